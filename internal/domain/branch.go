package domain

// Branch is a physical rental office. Cars, employees and clients point
// back at their branch by id; the 1:1 revenue record points at the branch.
type Branch struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	CompanyID int64  `json:"company_id"`
}

// Company is the rental company owning the branches.
type Company struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Domain  string `json:"domain"`
	Address string `json:"address"`
	Owner   string `json:"owner"`
	Logo    string `json:"logo,omitempty"`
}
