package entities

// StoreEvaluation is the result of pricing a demand against a single store.
// Total covers priced items only; when Missing is non-empty the total is
// partial and callers must check Missing before trusting it.
type StoreEvaluation struct {
	Total   Price
	Missing []ItemName
}

// Feasible reports whether the store prices every demanded item.
func (e StoreEvaluation) Feasible() bool {
	return len(e.Missing) == 0
}
