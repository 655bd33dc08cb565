package http

import (
	"net/http"

	"carrental-backend/internal/service"

	"github.com/gorilla/mux"
)

type ReturnalHandler struct {
	returnals service.ReturnalService
}

func NewReturnalHandler(returnals service.ReturnalService) *ReturnalHandler {
	return &ReturnalHandler{returnals: returnals}
}

func (h *ReturnalHandler) Register(r *mux.Router) {
	r.HandleFunc("/returnals", h.List).Methods(http.MethodGet)
	r.HandleFunc("/returnals", h.Add).Methods(http.MethodPost)
	r.HandleFunc("/returnals/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/returnals/{id}", h.Edit).Methods(http.MethodPut)
	r.HandleFunc("/returnals/{id}", h.Delete).Methods(http.MethodDelete)
}

func (h *ReturnalHandler) List(w http.ResponseWriter, r *http.Request) {
	returnals, err := h.returnals.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, returnals)
}

func (h *ReturnalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	ret, err := h.returnals.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ret)
}

func (h *ReturnalHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req service.ReturnalRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	ret, err := h.returnals.Add(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, ret)
}

func (h *ReturnalHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req service.ReturnalRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	ret, err := h.returnals.Edit(r.Context(), id, req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ret)
}

func (h *ReturnalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.returnals.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
