package domain

import "time"

// Subscription mirrors the shop's app subscription record.
type Subscription struct {
	Shop               string
	SubscriptionID     string
	Name               string
	Status             SubscriptionStatus
	CurrentPeriodStart *time.Time
	CancelledAt        *time.Time
	UpdatedAt          time.Time
}

// Tier returns the tier granted by the subscription. Only active
// subscriptions grant a paid tier; ok is false for unrecognized plan names.
func (s *Subscription) Tier() (Tier, bool) {
	if s == nil || s.Status != SubscriptionActive {
		return TierFree, true
	}
	return ParseTier(s.Name)
}
