package billing

// GSTRate is the flat 18% surcharge applied to the pre-tax subtotal.
const GSTRate = 0.18

const (
	StatusDraft   = "draft"
	StatusSent    = "sent"
	StatusPending = "pending"
	StatusPaid    = "paid"

	// StatusOverdue is never stored; reads derive it from the due date.
	StatusOverdue = "overdue"

	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusPending   = "pending"

	WarningNegativeTotal = "negative_total"
)
