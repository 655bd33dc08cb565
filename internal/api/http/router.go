package http

import (
	"net/http"

	"carrental-backend/internal/service"

	"github.com/gorilla/mux"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Auth         *AuthMiddleware
	AuthSvc      service.AuthService
	Cars         service.CarService
	Clients      service.ClientService
	Employees    service.EmployeeService
	Branches     service.BranchService
	Companies    service.CompanyService
	Reservations service.ReservationService
	Rents        service.RentService
	Returnals    service.ReturnalService
	Revenues     service.RevenueService
}

// NewRouter builds the full route table. Login and registration stay
// outside the auth middleware; everything else requires credentials
// unless auth mode is "test".
func NewRouter(h Handlers) *mux.Router {
	root := mux.NewRouter()
	root.Use(RequestID, RequestLogger)

	NewAuthHandler(h.AuthSvc, h.Clients).Register(root)

	api := root.NewRoute().Subrouter()
	api.Use(h.Auth.Authenticate)

	NewCarHandler(h.Cars).Register(api, h.Auth)
	NewClientHandler(h.Clients).Register(api)
	NewEmployeeHandler(h.Employees).Register(api)
	NewBranchHandler(h.Branches).Register(api)
	NewCompanyHandler(h.Companies).Register(api, h.Auth)
	NewReservationHandler(h.Reservations).Register(api)
	NewRentHandler(h.Rents).Register(api)
	NewReturnalHandler(h.Returnals).Register(api)
	NewRevenueHandler(h.Revenues).Register(api)

	root.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusNotFound, errorResponse{Error: "route not found"})
	})
	return root
}
