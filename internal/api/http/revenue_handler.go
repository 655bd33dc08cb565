package http

import (
	"net/http"

	"carrental-backend/internal/service"

	"github.com/gorilla/mux"
)

// RevenueHandler exposes revenue read endpoints. Totals are never set
// directly over HTTP; they change only through bookings.
type RevenueHandler struct {
	revenues service.RevenueService
}

func NewRevenueHandler(revenues service.RevenueService) *RevenueHandler {
	return &RevenueHandler{revenues: revenues}
}

func (h *RevenueHandler) Register(r *mux.Router) {
	r.HandleFunc("/revenues", h.List).Methods(http.MethodGet)
	r.HandleFunc("/revenues/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/revenues/byBranch/{branchId}", h.GetByBranch).Methods(http.MethodGet)
}

func (h *RevenueHandler) List(w http.ResponseWriter, r *http.Request) {
	revenues, err := h.revenues.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, revenues)
}

func (h *RevenueHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	rev, err := h.revenues.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rev)
}

func (h *RevenueHandler) GetByBranch(w http.ResponseWriter, r *http.Request) {
	branchID, ok := pathID(w, r, "branchId")
	if !ok {
		return
	}
	rev, err := h.revenues.GetByBranch(r.Context(), branchID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rev)
}
