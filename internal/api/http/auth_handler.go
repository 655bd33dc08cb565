package http

import (
	"net/http"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"

	"github.com/gorilla/mux"
)

type AuthHandler struct {
	auth    service.AuthService
	clients service.ClientService
}

func NewAuthHandler(auth service.AuthService, clients service.ClientService) *AuthHandler {
	return &AuthHandler{auth: auth, clients: clients}
}

// Register wires the auth routes onto the unauthenticated router; login
// and registration must work without credentials.
func (h *AuthHandler) Register(r *mux.Router) {
	r.HandleFunc("/api/auth/login", h.Login).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/register", h.RegisterClient).Methods(http.MethodPost)
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string       `json:"access_token"`
	User        *domain.User `json:"user"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	token, user, err := h.auth.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, loginResponse{AccessToken: token, User: user})
}

func (h *AuthHandler) RegisterClient(w http.ResponseWriter, r *http.Request) {
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
