package http

import (
	"net/http"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"

	"github.com/gorilla/mux"
)

type CarHandler struct {
	cars service.CarService
}

func NewCarHandler(cars service.CarService) *CarHandler {
	return &CarHandler{cars: cars}
}

func (h *CarHandler) Register(r *mux.Router, auth *AuthMiddleware) {
	r.HandleFunc("/cars", h.List).Methods(http.MethodGet)
	r.HandleFunc("/cars", auth.RequireRole(domain.RoleAdmin, h.Add)).Methods(http.MethodPost)
	r.HandleFunc("/cars/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/cars/{id}", h.Edit).Methods(http.MethodPut)
	r.HandleFunc("/cars/{id}", h.Delete).Methods(http.MethodDelete)
	r.HandleFunc("/cars/statusOnDate/{id}", h.StatusOnDate).Methods(http.MethodGet)
	r.HandleFunc("/cars/setMileageAndPrice/{id}", h.SetMileageAndPrice).Methods(http.MethodPatch)
	r.HandleFunc("/cars/setStatus/{id}", h.SetStatus).Methods(http.MethodPatch)
}

func (h *CarHandler) List(w http.ResponseWriter, r *http.Request) {
	cars, err := h.cars.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cars)
}

func (h *CarHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	car, err := h.cars.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, car)
}

func (h *CarHandler) Add(w http.ResponseWriter, r *http.Request) {
	var car domain.Car
	if !decodeJSON(w, r, &car) {
		return
	}
	if err := h.cars.Add(r.Context(), &car); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, car)
}

func (h *CarHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var car domain.Car
	if !decodeJSON(w, r, &car) {
		return
	}
	edited, err := h.cars.Edit(r.Context(), id, &car)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, edited)
}

func (h *CarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.cars.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *CarHandler) StatusOnDate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	date, err := domain.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		respondBadRequest(w, "invalid date, expected YYYY-MM-DD")
		return
	}
	status, err := h.cars.StatusOnDate(r.Context(), id, date)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]domain.CarStatus{"status": status})
}

func (h *CarHandler) SetMileageAndPrice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req struct {
		Mileage          float64 `json:"mileage"`
		PricePerDayCents int64   `json:"price_per_day_cents"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	car, err := h.cars.UpdateMileageAndPrice(r.Context(), id, req.Mileage, req.PricePerDayCents)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, car)
}

func (h *CarHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req struct {
		Status domain.CarStatus `json:"status"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	car, err := h.cars.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, car)
}
