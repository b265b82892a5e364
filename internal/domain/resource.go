package domain

// MaxOptionSets is the number of option sets requested per catalog item.
const MaxOptionSets = 3

// Money is a decimal amount in its original string form plus an ISO currency code.
type Money struct {
	Amount       string
	CurrencyCode string
}

// OptionSet is a named, ordered list of option values ("Color" -> Red, Blue).
type OptionSet struct {
	Name   string
	Values []string
}

// CatalogDetails holds the fields only catalog items carry.
type CatalogDetails struct {
	Category string
	MinPrice Money
	Options  []OptionSet
}

// ResourceItem is one fetched origin node. Type selects the variant;
// Catalog is set only for catalog items, ParentHandle only for articles.
type ResourceItem struct {
	Type   ResourceType
	ID     string
	Title  string
	Handle string
	URL    string

	Catalog      *CatalogDetails
	ParentHandle string
}

// Valid reports whether the item satisfies the identity invariants.
func (i ResourceItem) Valid() bool {
	return i.ID != "" && i.Title != "" && i.Handle != ""
}
