package http

import (
	"net/http"

	"carrental-backend/internal/service"

	"github.com/gorilla/mux"
)

// EmployeeHandler serves the management endpoints under /api/manageL1.
type EmployeeHandler struct {
	employees service.EmployeeService
}

func NewEmployeeHandler(employees service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employees: employees}
}

func (h *EmployeeHandler) Register(r *mux.Router) {
	r.HandleFunc("/api/manageL1/employees", h.List).Methods(http.MethodGet)
	r.HandleFunc("/api/manageL1/employees", h.Add).Methods(http.MethodPost)
	r.HandleFunc("/api/manageL1/employees/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/api/manageL1/employees/{id}", h.Edit).Methods(http.MethodPut)
	r.HandleFunc("/api/manageL1/employees/{id}", h.Delete).Methods(http.MethodDelete)
	r.HandleFunc("/api/manageL1/employees/{id}/assignToBranch/{branchId}", h.AssignToBranch).Methods(http.MethodPatch)
	r.HandleFunc("/api/manageL1/employees/{id}/removeFromBranch/{branchId}", h.RemoveFromBranch).Methods(http.MethodPatch)
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employees.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, employees)
}

func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	employee, err := h.employees.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, employee)
}

func (h *EmployeeHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req service.EmployeeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	employee, err := h.employees.Add(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, employee)
}

func (h *EmployeeHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req service.EmployeeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	employee, err := h.employees.Edit(r.Context(), id, req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, employee)
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.employees.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *EmployeeHandler) AssignToBranch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	branchID, ok := pathID(w, r, "branchId")
	if !ok {
		return
	}
	employee, err := h.employees.AssignToBranch(r.Context(), id, branchID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, employee)
}

func (h *EmployeeHandler) RemoveFromBranch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	branchID, ok := pathID(w, r, "branchId")
	if !ok {
		return
	}
	if err := h.employees.RemoveFromBranch(r.Context(), id, branchID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
