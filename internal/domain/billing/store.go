package billing

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store keeps invoices and payments in memory, replace-in-place by ID.
type Store struct {
	mu       sync.RWMutex
	invoices []Invoice
	payments []Payment
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Append(invoice Invoice) Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()

	invoice.ID = uuid.NewString()
	invoice.CreatedAt = time.Now().UTC()
	s.invoices = append(s.invoices, invoice)
	return invoice
}

func (s *Store) Get(id string) (Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, invoice := range s.invoices {
		if invoice.ID == id {
			return invoice, nil
		}
	}
	return Invoice{}, ErrInvoiceNotFound
}

func (s *Store) Replace(invoice Invoice) (Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.invoices {
		if existing.ID == invoice.ID {
			invoice.CreatedAt = existing.CreatedAt
			s.invoices[i] = invoice
			return invoice, nil
		}
	}
	return Invoice{}, ErrInvoiceNotFound
}

func (s *Store) List() []Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Invoice, len(s.invoices))
	copy(out, s.invoices)
	return out
}

func (s *Store) AppendPayment(payment Payment) Payment {
	s.mu.Lock()
	defer s.mu.Unlock()

	payment.ID = uuid.NewString()
	s.payments = append(s.payments, payment)
	return payment
}

func (s *Store) ListPayments() []Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Payment, len(s.payments))
	copy(out, s.payments)
	return out
}
