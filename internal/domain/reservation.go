package domain

// Reservation holds a car for a client over [StartDate, EndDate). The end
// date is exclusive for pricing; the car is occupied through EndDate.
// StartDate must be strictly before EndDate.
type Reservation struct {
	ID            int64 `json:"id"`
	ClientID      int64 `json:"client_id"`
	CarID         int64 `json:"car_id"`
	StartDate     Date  `json:"start_date"`
	EndDate       Date  `json:"end_date"`
	PriceCents    int64 `json:"price_cents"`
	StartBranchID int64 `json:"start_branch_id"`
	EndBranchID   int64 `json:"end_branch_id"`
}

// Period returns the reserved date interval.
func (r *Reservation) Period() Period {
	return Period{Start: r.StartDate, End: r.EndDate}
}

// Rent records the physical handover of the car against a reservation.
type Rent struct {
	ID            int64  `json:"id"`
	ReservationID int64  `json:"reservation_id"`
	EmployeeID    *int64 `json:"employee_id,omitempty"`
	RentDate      Date   `json:"rent_date"`
	Comments      string `json:"comments,omitempty"`
}

// Returnal records the car being received back, with an optional upcharge
// for damage or late return.
type Returnal struct {
	ID            int64  `json:"id"`
	ReservationID int64  `json:"reservation_id"`
	EmployeeID    *int64 `json:"employee_id,omitempty"`
	ReturnDate    Date   `json:"return_date"`
	UpchargeCents int64  `json:"upcharge_cents"`
	Comments      string `json:"comments,omitempty"`
}
