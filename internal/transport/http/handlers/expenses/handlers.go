package expensehandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"fsadmin/internal/domain/auth"
	"fsadmin/internal/domain/expense"
	"fsadmin/internal/transport/http/api"
	"fsadmin/internal/transport/http/middleware"
	"fsadmin/internal/transport/http/shared"
)

type Handler struct {
	Service *expense.Service
}

func NewHandler(service *expense.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	approver := middleware.RequireRole(auth.RoleSuperAdmin, auth.RoleAdmin)
	recorder := middleware.RequireRole(auth.RoleSuperAdmin, auth.RoleAdmin, auth.RoleManager, auth.RoleSupervisor)

	r.Route("/expenses", func(r chi.Router) {
		r.With(recorder).Get("/", h.handleList)
		r.With(recorder).Get("/{expenseID}", h.handleGet)
		r.With(recorder).Post("/", h.handleCreate)
		r.With(recorder).Put("/{expenseID}", h.handleUpdate)
		r.With(approver).Post("/{expenseID}/approve", h.handleApprove)
		r.With(approver).Post("/{expenseID}/reject", h.handleReject)
	})
}

type expensePayload struct {
	Category      string   `json:"category"`
	Vendor        string   `json:"vendor"`
	BaseAmount    *float64 `json:"baseAmount"`
	Date          string   `json:"date"`
	PaymentMethod string   `json:"paymentMethod"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	statusFilter := r.URL.Query().Get("status")
	expenses := make([]expense.Expense, 0)
	for _, e := range h.Service.List() {
		if statusFilter != "" && e.Status != statusFilter {
			continue
		}
		expenses = append(expenses, e)
	}
	api.Success(w, expenses, requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	e, err := h.Service.Get(chi.URLParam(r, "expenseID"))
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "expense not found", requestID)
		return
	}
	api.Success(w, e, requestID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload expensePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("category", payload.Category, "category is required")
	v.Required("vendor", payload.Vendor, "vendor is required")
	if payload.BaseAmount == nil {
		v.Add("baseAmount", "base amount is required")
	} else {
		v.Positive("baseAmount", *payload.BaseAmount, "base amount must be positive")
	}
	var date time.Time
	if payload.Date != "" {
		date, _ = v.Date("date", payload.Date)
	}
	if v.Reject(w, requestID) {
		return
	}
	if date.IsZero() {
		date = time.Now().UTC()
	}

	created := h.Service.Create(expense.Input{
		Category:      payload.Category,
		Vendor:        payload.Vendor,
		BaseAmount:    *payload.BaseAmount,
		Date:          date,
		PaymentMethod: payload.PaymentMethod,
	})
	api.Created(w, created, requestID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload expensePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	// An absent baseAmount means the caller did not touch the figure; the
	// stored base is reconstructed so the totals round-trip unchanged.
	baseChanged := payload.BaseAmount != nil

	v := shared.NewValidator()
	v.Required("category", payload.Category, "category is required")
	v.Required("vendor", payload.Vendor, "vendor is required")
	if baseChanged {
		v.Positive("baseAmount", *payload.BaseAmount, "base amount must be positive")
	}
	var date time.Time
	if payload.Date != "" {
		date, _ = v.Date("date", payload.Date)
	}
	if v.Reject(w, requestID) {
		return
	}

	input := expense.Input{
		Category:      payload.Category,
		Vendor:        payload.Vendor,
		Date:          date,
		PaymentMethod: payload.PaymentMethod,
	}
	if baseChanged {
		input.BaseAmount = *payload.BaseAmount
	}

	updated, err := h.Service.Update(chi.URLParam(r, "expenseID"), input, baseChanged)
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "expense not found", requestID)
		return
	}
	api.Success(w, updated, requestID)
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.Service.Approve)
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.Service.Reject)
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, apply func(string) (expense.Expense, error)) {
	requestID := middleware.GetRequestID(r.Context())

	e, err := apply(chi.URLParam(r, "expenseID"))
	switch {
	case errors.Is(err, expense.ErrExpenseNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "expense not found", requestID)
	case errors.Is(err, expense.ErrInvalidTransition):
		api.Fail(w, http.StatusConflict, "invalid_transition", "only pending expenses can be approved or rejected", requestID)
	case err != nil:
		api.Fail(w, http.StatusInternalServerError, "expense_transition_failed", "failed to update expense status", requestID)
	default:
		api.Success(w, e, requestID)
	}
}
