package domain

type CarStatus string

const (
	CarStatusAvailable   CarStatus = "AVAILABLE"
	CarStatusRented      CarStatus = "RENTED"
	CarStatusUnavailable CarStatus = "UNAVAILABLE"
)

type Car struct {
	ID               int64     `json:"id"`
	Make             string    `json:"make"`
	Model            string    `json:"model"`
	BodyStyle        string    `json:"body_style"`
	Year             int32     `json:"year"`
	Colour           string    `json:"colour"`
	Mileage          float64   `json:"mileage"`
	Status           CarStatus `json:"status"`
	PricePerDayCents int64     `json:"price_per_day_cents"`
	BranchID         *int64    `json:"branch_id,omitempty"`
}
