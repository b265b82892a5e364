package domain

// QuotaLimit is a per-resource item ceiling. Unlimited means no ceiling;
// zero means the resource type is skipped.
type QuotaLimit int

// Unlimited disables the ceiling.
const Unlimited QuotaLimit = -1

func (q QuotaLimit) IsUnlimited() bool { return q < 0 }

// Skips reports whether the resource type must not be fetched at all.
func (q QuotaLimit) Skips() bool { return q == 0 }

// QuotaLimits maps each resource type to its ceiling.
type QuotaLimits map[ResourceType]QuotaLimit

// For returns the limit for rt. Missing entries skip the resource type.
func (l QuotaLimits) For(rt ResourceType) QuotaLimit {
	q, ok := l[rt]
	if !ok {
		return 0
	}
	return q
}
