package domain

// Revenue is the running monetary total of a branch, 1:1 with the branch.
// The total is only ever mutated through signed deltas; negative totals
// are permitted so refunds reconcile correctly.
type Revenue struct {
	ID         int64 `json:"id"`
	BranchID   int64 `json:"branch_id"`
	TotalCents int64 `json:"total_cents"`
}
