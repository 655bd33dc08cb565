package http

import (
	"net/http"

	"carrental-backend/internal/service"

	"github.com/gorilla/mux"
)

type RentHandler struct {
	rents service.RentService
}

func NewRentHandler(rents service.RentService) *RentHandler {
	return &RentHandler{rents: rents}
}

func (h *RentHandler) Register(r *mux.Router) {
	r.HandleFunc("/rents", h.List).Methods(http.MethodGet)
	r.HandleFunc("/rents", h.Add).Methods(http.MethodPost)
	r.HandleFunc("/rents/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/rents/{id}", h.Edit).Methods(http.MethodPut)
	r.HandleFunc("/rents/{id}", h.Delete).Methods(http.MethodDelete)
}

func (h *RentHandler) List(w http.ResponseWriter, r *http.Request) {
	rents, err := h.rents.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rents)
}

func (h *RentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	rent, err := h.rents.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rent)
}

func (h *RentHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req service.RentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	rent, err := h.rents.Add(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, rent)
}

func (h *RentHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req service.RentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	rent, err := h.rents.Edit(r.Context(), id, req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rent)
}

func (h *RentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.rents.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
