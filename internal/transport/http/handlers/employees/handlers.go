package employeehandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"fsadmin/internal/domain/auth"
	"fsadmin/internal/domain/hr"
	"fsadmin/internal/transport/http/api"
	"fsadmin/internal/transport/http/middleware"
	"fsadmin/internal/transport/http/shared"
)

type Handler struct {
	Service *hr.Service
}

func NewHandler(service *hr.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Get("/{employeeID}", h.handleGet)
		r.With(middleware.RequireRole(auth.RoleSuperAdmin, auth.RoleAdmin)).Post("/", h.handleCreate)
		r.With(middleware.RequireRole(auth.RoleSuperAdmin, auth.RoleAdmin)).Put("/{employeeID}", h.handleUpdate)
		r.With(middleware.RequireRole(auth.RoleSuperAdmin, auth.RoleAdmin)).Delete("/{employeeID}", h.handleDelete)
		r.With(middleware.RequireRole(auth.RoleSuperAdmin, auth.RoleAdmin)).Post("/{employeeID}/deactivate", h.handleDeactivate)
	})
}

type employeePayload struct {
	Name        string  `json:"name"`
	Designation string  `json:"designation"`
	BaseSalary  float64 `json:"baseSalary"`
	UAN         string  `json:"uan"`
	ESICNumber  string  `json:"esicNumber"`
	Status      string  `json:"status"`
	JoinedAt    string  `json:"joinedAt"`
}

func (p employeePayload) validate(v *shared.Validator) time.Time {
	v.Required("name", p.Name, "name is required")
	v.Required("designation", p.Designation, "designation is required")
	v.Positive("baseSalary", p.BaseSalary, "base salary must be positive")
	v.Enum("status", p.Status, []string{hr.StatusActive, hr.StatusInactive}, "status must be active or inactive")

	var joined time.Time
	if p.JoinedAt != "" {
		joined, _ = v.Date("joinedAt", p.JoinedAt)
	}
	return joined
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	if r.URL.Query().Get("status") == hr.StatusActive {
		api.Success(w, h.Service.ListActive(), requestID)
		return
	}
	api.Success(w, h.Service.List(), requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	employee, err := h.Service.Get(chi.URLParam(r, "employeeID"))
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
		return
	}
	api.Success(w, employee, requestID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload employeePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	joined := payload.validate(v)
	if v.Reject(w, requestID) {
		return
	}

	status := payload.Status
	if status == "" {
		status = hr.StatusActive
	}

	employee := h.Service.Create(hr.Employee{
		Name:        payload.Name,
		Designation: payload.Designation,
		BaseSalary:  payload.BaseSalary,
		UAN:         payload.UAN,
		ESICNumber:  payload.ESICNumber,
		Status:      status,
		JoinedAt:    joined,
	})
	api.Created(w, employee, requestID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	existing, err := h.Service.Get(chi.URLParam(r, "employeeID"))
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
		return
	}

	var payload employeePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	joined := payload.validate(v)
	if v.Reject(w, requestID) {
		return
	}

	existing.Name = payload.Name
	existing.Designation = payload.Designation
	existing.BaseSalary = payload.BaseSalary
	existing.UAN = payload.UAN
	existing.ESICNumber = payload.ESICNumber
	if payload.Status != "" {
		existing.Status = payload.Status
	}
	if !joined.IsZero() {
		existing.JoinedAt = joined
	}

	updated, err := h.Service.Update(existing)
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
		return
	}
	api.Success(w, updated, requestID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	err := h.Service.Delete(chi.URLParam(r, "employeeID"))
	switch {
	case errors.Is(err, hr.ErrEmployeeNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
	case errors.Is(err, hr.ErrEmployeeReferenced):
		api.Fail(w, http.StatusConflict, "employee_referenced", "employee has payroll history; deactivate instead", requestID)
	case err != nil:
		api.Fail(w, http.StatusInternalServerError, "delete_failed", "failed to delete employee", requestID)
	default:
		api.Success(w, map[string]string{"status": "deleted"}, requestID)
	}
}

func (h *Handler) handleDeactivate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	employee, err := h.Service.Deactivate(chi.URLParam(r, "employeeID"))
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
		return
	}
	api.Success(w, employee, requestID)
}
