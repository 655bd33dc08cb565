package http

import (
	"net/http"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"

	"github.com/gorilla/mux"
)

// CompanyHandler serves the rental company resource under /carRental.
type CompanyHandler struct {
	companies service.CompanyService
}

func NewCompanyHandler(companies service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companies: companies}
}

func (h *CompanyHandler) Register(r *mux.Router, auth *AuthMiddleware) {
	r.HandleFunc("/carRental", h.List).Methods(http.MethodGet)
	r.HandleFunc("/carRental", auth.RequireRole(domain.RoleAdmin, h.Add)).Methods(http.MethodPost)
	r.HandleFunc("/carRental/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/carRental/{id}", h.Edit).Methods(http.MethodPut)
	r.HandleFunc("/carRental/{id}", h.Delete).Methods(http.MethodDelete)
}

func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	companies, err := h.companies.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, companies)
}

func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	company, err := h.companies.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, company)
}

func (h *CompanyHandler) Add(w http.ResponseWriter, r *http.Request) {
	var company domain.Company
	if !decodeJSON(w, r, &company) {
		return
	}
	if err := h.companies.Add(r.Context(), &company); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, company)
}

func (h *CompanyHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var company domain.Company
	if !decodeJSON(w, r, &company) {
		return
	}
	edited, err := h.companies.Edit(r.Context(), id, &company)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, edited)
}

func (h *CompanyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.companies.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
