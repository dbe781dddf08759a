package billing

import "time"

type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

type Invoice struct {
	ID        string     `json:"id"`
	Client    string     `json:"client"`
	Items     []LineItem `json:"items"`
	Subtotal  float64    `json:"subtotal"`
	Tax       float64    `json:"tax"`
	Discount  float64    `json:"discount"`
	Amount    float64    `json:"amount"`
	Status    string     `json:"status"`
	IssueDate time.Time  `json:"issueDate"`
	DueDate   time.Time  `json:"dueDate"`
	CreatedAt time.Time  `json:"createdAt"`
}

// EffectiveStatus derives the display status against the given clock. An
// unpaid invoice past its due date reads as overdue without any stored
// transition, so the answer can change between reads.
func (i Invoice) EffectiveStatus(now time.Time) string {
	if i.Status != StatusPaid && !i.DueDate.IsZero() && i.DueDate.Before(now) {
		return StatusOverdue
	}
	return i.Status
}

type Payment struct {
	ID        string    `json:"id"`
	InvoiceID string    `json:"invoiceId"`
	Amount    float64   `json:"amount"`
	Method    string    `json:"method"`
	Status    string    `json:"status"`
	PaidAt    time.Time `json:"paidAt"`
}

type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}
