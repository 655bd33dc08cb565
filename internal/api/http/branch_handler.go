package http

import (
	"net/http"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"

	"github.com/gorilla/mux"
)

type BranchHandler struct {
	branches service.BranchService
}

func NewBranchHandler(branches service.BranchService) *BranchHandler {
	return &BranchHandler{branches: branches}
}

func (h *BranchHandler) Register(r *mux.Router) {
	r.HandleFunc("/branches", h.List).Methods(http.MethodGet)
	r.HandleFunc("/branches", h.Add).Methods(http.MethodPost)
	r.HandleFunc("/branches/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/branches/{id}", h.Edit).Methods(http.MethodPut)
	r.HandleFunc("/branches/{id}", h.Delete).Methods(http.MethodDelete)
}

func (h *BranchHandler) List(w http.ResponseWriter, r *http.Request) {
	branches, err := h.branches.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, branches)
}

func (h *BranchHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	branch, err := h.branches.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, branch)
}

func (h *BranchHandler) Add(w http.ResponseWriter, r *http.Request) {
	var branch domain.Branch
	if !decodeJSON(w, r, &branch) {
		return
	}
	if err := h.branches.Add(r.Context(), &branch); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, branch)
}

func (h *BranchHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var branch domain.Branch
	if !decodeJSON(w, r, &branch) {
		return
	}
	edited, err := h.branches.Edit(r.Context(), id, &branch)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, edited)
}

func (h *BranchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.branches.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
