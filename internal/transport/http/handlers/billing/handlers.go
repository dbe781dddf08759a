package billinghandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"fsadmin/internal/domain/auth"
	"fsadmin/internal/domain/billing"
	"fsadmin/internal/transport/http/api"
	"fsadmin/internal/transport/http/middleware"
	"fsadmin/internal/transport/http/shared"
)

type Handler struct {
	Service *billing.Service
	// Now is swappable so tests can pin the overdue clock.
	Now func() time.Time
}

func NewHandler(service *billing.Service) *Handler {
	return &Handler{Service: service, Now: time.Now}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	admin := middleware.RequireRole(auth.RoleSuperAdmin, auth.RoleAdmin)
	reader := middleware.RequireRole(auth.RoleSuperAdmin, auth.RoleAdmin, auth.RoleManager)

	r.Route("/invoices", func(r chi.Router) {
		r.With(reader).Get("/", h.handleList)
		r.With(reader).Get("/{invoiceID}", h.handleGet)
		r.With(admin).Post("/", h.handleCreate)
		r.With(admin).Put("/{invoiceID}", h.handleUpdate)
		r.With(admin).Post("/{invoiceID}/send", h.handleSend)
		r.With(admin).Post("/{invoiceID}/pay", h.handleMarkPaid)
	})
	r.With(reader).Get("/payments", h.handleListPayments)
}

// invoiceView overlays the stored invoice with the status derived at read
// time. The stored status never carries overdue.
type invoiceView struct {
	billing.Invoice
	Status string `json:"status"`
}

func (h *Handler) view(invoice billing.Invoice) invoiceView {
	return invoiceView{Invoice: invoice, Status: invoice.EffectiveStatus(h.Now())}
}

type lineItemPayload struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
}

type invoicePayload struct {
	Client    string            `json:"client"`
	Items     []lineItemPayload `json:"items"`
	Discount  float64           `json:"discount"`
	IssueDate string            `json:"issueDate"`
	DueDate   string            `json:"dueDate"`
}

func (p invoicePayload) validate(v *shared.Validator) (items []billing.LineItem, issueDate, dueDate time.Time) {
	v.Required("client", p.Client, "client is required")
	v.NonNegative("discount", p.Discount, "discount cannot be negative")
	if len(p.Items) == 0 {
		v.Add("items", "at least one line item is required")
	}
	for _, item := range p.Items {
		v.Required("items.description", item.Description, "line item description is required")
		v.Positive("items.quantity", item.Quantity, "line item quantity must be positive")
		v.NonNegative("items.rate", item.Rate, "line item rate cannot be negative")
		items = append(items, billing.LineItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
		})
	}
	if p.IssueDate != "" {
		issueDate, _ = v.Date("issueDate", p.IssueDate)
	}
	if p.DueDate != "" {
		dueDate, _ = v.Date("dueDate", p.DueDate)
	}
	return items, issueDate, dueDate
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	statusFilter := r.URL.Query().Get("status")
	views := make([]invoiceView, 0)
	for _, invoice := range h.Service.List() {
		view := h.view(invoice)
		if statusFilter != "" && view.Status != statusFilter {
			continue
		}
		views = append(views, view)
	}
	api.Success(w, views, requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	invoice, err := h.Service.Get(chi.URLParam(r, "invoiceID"))
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "invoice not found", requestID)
		return
	}
	api.Success(w, h.view(invoice), requestID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload invoicePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	items, issueDate, dueDate := payload.validate(v)
	if v.Reject(w, requestID) {
		return
	}

	invoice, warnings := h.Service.CreateInvoice(payload.Client, items, payload.Discount, issueDate, dueDate)
	api.SuccessWithWarnings(w, http.StatusCreated, h.view(invoice), warnings, requestID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload invoicePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	items, _, dueDate := payload.validate(v)
	if v.Reject(w, requestID) {
		return
	}

	invoice, warnings, err := h.Service.UpdateInvoice(chi.URLParam(r, "invoiceID"), payload.Client, items, payload.Discount, dueDate)
	switch {
	case errors.Is(err, billing.ErrInvoiceNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "invoice not found", requestID)
	case errors.Is(err, billing.ErrAlreadyPaid):
		api.Fail(w, http.StatusConflict, "already_paid", "paid invoices cannot be edited", requestID)
	case err != nil:
		api.Fail(w, http.StatusInternalServerError, "invoice_update_failed", "failed to update invoice", requestID)
	default:
		api.SuccessWithWarnings(w, http.StatusOK, h.view(invoice), warnings, requestID)
	}
}

func (h *Handler) handleSend(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	invoice, err := h.Service.Send(chi.URLParam(r, "invoiceID"))
	switch {
	case errors.Is(err, billing.ErrInvoiceNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "invoice not found", requestID)
	case errors.Is(err, billing.ErrInvalidTransition):
		api.Fail(w, http.StatusConflict, "invalid_transition", "only draft invoices can be sent", requestID)
	case err != nil:
		api.Fail(w, http.StatusInternalServerError, "invoice_send_failed", "failed to send invoice", requestID)
	default:
		api.Success(w, h.view(invoice), requestID)
	}
}

type payPayload struct {
	Method string `json:"method"`
}

func (h *Handler) handleMarkPaid(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload payPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	invoice, payment, err := h.Service.MarkPaid(chi.URLParam(r, "invoiceID"), payload.Method)
	switch {
	case errors.Is(err, billing.ErrInvoiceNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "invoice not found", requestID)
	case errors.Is(err, billing.ErrAlreadyPaid):
		api.Fail(w, http.StatusConflict, "already_paid", "invoice is already paid", requestID)
	case err != nil:
		api.Fail(w, http.StatusInternalServerError, "invoice_pay_failed", "failed to mark invoice paid", requestID)
	default:
		api.Success(w, map[string]any{
			"invoice": h.view(invoice),
			"payment": payment,
		}, requestID)
	}
}

func (h *Handler) handleListPayments(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Service.Payments(), middleware.GetRequestID(r.Context()))
}
