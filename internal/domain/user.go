package domain

type UserKind string

const (
	UserKindClient   UserKind = "CLIENT"
	UserKindEmployee UserKind = "EMPLOYEE"
)

type Position string

const (
	PositionManager  Position = "MANAGER"
	PositionEmployee Position = "EMPLOYEE"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User is the closed client/employee variant. Kind selects which of the
// optional field groups applies: Email and Address belong to clients,
// Position to employees.
type User struct {
	ID           int64    `json:"id"`
	Kind         UserKind `json:"kind"`
	Login        string   `json:"login"`
	PasswordHash string   `json:"-"`
	Name         string   `json:"name"`
	Surname      string   `json:"surname"`
	BranchID     *int64   `json:"branch_id,omitempty"`
	Roles        []string `json:"roles"`

	Email    string   `json:"email,omitempty"`
	Address  string   `json:"address,omitempty"`
	Position Position `json:"position,omitempty"`
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
