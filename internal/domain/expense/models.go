package expense

import "time"

// Expense stores the GST-inclusive total in Amount. The entered base is not
// kept separately: Amount - GST recovers it exactly, and the edit flow
// depends on that round-trip.
type Expense struct {
	ID            string    `json:"id"`
	Category      string    `json:"category"`
	Vendor        string    `json:"vendor"`
	Amount        float64   `json:"amount"`
	GST           float64   `json:"gst"`
	Status        string    `json:"status"`
	Date          time.Time `json:"date"`
	PaymentMethod string    `json:"paymentMethod"`
	CreatedAt     time.Time `json:"createdAt"`
}

// BaseAmount reconstructs the originally entered pre-GST amount.
func (e Expense) BaseAmount() float64 {
	return e.Amount - e.GST
}

type Totals struct {
	GST   float64 `json:"gst"`
	Total float64 `json:"total"`
}
