package billing

import "time"

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// CreateInvoice prices the items and stores the invoice as a draft. The
// returned warnings flag nonsensical but numerically valid results, such as
// a discount larger than subtotal plus tax.
func (s *Service) CreateInvoice(client string, items []LineItem, discount float64, issueDate, dueDate time.Time) (Invoice, []string) {
	priced := make([]LineItem, len(items))
	for i, item := range items {
		item.Amount = item.Quantity * item.Rate
		priced[i] = item
	}
	totals, warnings := ComputeTotals(priced, discount)

	invoice := s.store.Append(Invoice{
		Client:    client,
		Items:     priced,
		Subtotal:  totals.Subtotal,
		Tax:       totals.Tax,
		Discount:  discount,
		Amount:    totals.Total,
		Status:    StatusDraft,
		IssueDate: issueDate,
		DueDate:   dueDate,
	})
	return invoice, warnings
}

// UpdateInvoice replaces the items and discount and reprices. Paid invoices
// are settled history and cannot be edited.
func (s *Service) UpdateInvoice(id, client string, items []LineItem, discount float64, dueDate time.Time) (Invoice, []string, error) {
	invoice, err := s.store.Get(id)
	if err != nil {
		return Invoice{}, nil, err
	}
	if invoice.Status == StatusPaid {
		return Invoice{}, nil, ErrAlreadyPaid
	}

	priced := make([]LineItem, len(items))
	for i, item := range items {
		item.Amount = item.Quantity * item.Rate
		priced[i] = item
	}
	totals, warnings := ComputeTotals(priced, discount)

	invoice.Client = client
	invoice.Items = priced
	invoice.Subtotal = totals.Subtotal
	invoice.Tax = totals.Tax
	invoice.Discount = discount
	invoice.Amount = totals.Total
	invoice.DueDate = dueDate

	updated, err := s.store.Replace(invoice)
	return updated, warnings, err
}

func (s *Service) Get(id string) (Invoice, error) {
	return s.store.Get(id)
}

func (s *Service) List() []Invoice {
	return s.store.List()
}

// Send moves a draft invoice out the door.
func (s *Service) Send(id string) (Invoice, error) {
	invoice, err := s.store.Get(id)
	if err != nil {
		return Invoice{}, err
	}
	if invoice.Status != StatusDraft {
		return Invoice{}, ErrInvalidTransition
	}
	invoice.Status = StatusSent
	return s.store.Replace(invoice)
}

// MarkPaid is the only explicit transition to paid. It records exactly one
// settlement payment for the invoice amount.
func (s *Service) MarkPaid(id, method string) (Invoice, Payment, error) {
	invoice, err := s.store.Get(id)
	if err != nil {
		return Invoice{}, Payment{}, err
	}
	if invoice.Status == StatusPaid {
		return Invoice{}, Payment{}, ErrAlreadyPaid
	}

	invoice.Status = StatusPaid
	updated, err := s.store.Replace(invoice)
	if err != nil {
		return Invoice{}, Payment{}, err
	}

	payment := s.store.AppendPayment(Payment{
		InvoiceID: updated.ID,
		Amount:    updated.Amount,
		Method:    method,
		Status:    PaymentStatusCompleted,
		PaidAt:    time.Now().UTC(),
	})
	return updated, payment, nil
}

func (s *Service) Payments() []Payment {
	return s.store.ListPayments()
}
