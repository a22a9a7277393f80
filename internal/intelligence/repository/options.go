package repository

// ListRulesOptions selects the rules of one market. Rules with no brand or therapeutic area
// always apply; empty BrandID or TherapeuticArea select only those.
type ListRulesOptions struct {
	BrandID         string
	Market          string
	TherapeuticArea string
}
