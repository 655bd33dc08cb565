package http

import (
	"net/http"

	"carrental-backend/internal/service"

	"github.com/gorilla/mux"
)

type ClientHandler struct {
	clients service.ClientService
}

func NewClientHandler(clients service.ClientService) *ClientHandler {
	return &ClientHandler{clients: clients}
}

func (h *ClientHandler) Register(r *mux.Router) {
	r.HandleFunc("/clients", h.List).Methods(http.MethodGet)
	r.HandleFunc("/clients", h.Add).Methods(http.MethodPost)
	r.HandleFunc("/clients/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/clients/{id}", h.Edit).Methods(http.MethodPut)
	r.HandleFunc("/clients/{id}", h.Delete).Methods(http.MethodDelete)
	r.HandleFunc("/clients/{id}/assignToBranch/{branchId}", h.AssignToBranch).Methods(http.MethodPatch)
	r.HandleFunc("/clients/{id}/removeFromBranch/{branchId}", h.RemoveFromBranch).Methods(http.MethodPatch)
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clients.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, clients)
}

func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	client, err := h.clients.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, client)
}

func (h *ClientHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req service.ClientRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	client, err := h.clients.Add(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, client)
}

func (h *ClientHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req service.ClientRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	client, err := h.clients.Edit(r.Context(), id, req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, client)
}

func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.clients.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *ClientHandler) AssignToBranch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	branchID, ok := pathID(w, r, "branchId")
	if !ok {
		return
	}
	client, err := h.clients.AssignToBranch(r.Context(), id, branchID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, client)
}

func (h *ClientHandler) RemoveFromBranch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	branchID, ok := pathID(w, r, "branchId")
	if !ok {
		return
	}
	if err := h.clients.RemoveFromBranch(r.Context(), id, branchID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
