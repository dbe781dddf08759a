package expense

import "time"

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

type Input struct {
	Category      string
	Vendor        string
	BaseAmount    float64
	Date          time.Time
	PaymentMethod string
}

func (s *Service) Create(input Input) Expense {
	totals := ComputeTotals(input.BaseAmount)
	return s.store.Append(Expense{
		Category:      input.Category,
		Vendor:        input.Vendor,
		Amount:        totals.Total,
		GST:           totals.GST,
		Status:        StatusPending,
		Date:          input.Date,
		PaymentMethod: input.PaymentMethod,
	})
}

// Update edits an expense. When the caller does not supply a new base
// amount, the old base is reconstructed from the stored total minus GST and
// recomputed, so a no-change edit round-trips to the identical figures.
func (s *Service) Update(id string, input Input, baseChanged bool) (Expense, error) {
	expense, err := s.store.Get(id)
	if err != nil {
		return Expense{}, err
	}

	base := input.BaseAmount
	if !baseChanged {
		base = expense.BaseAmount()
	}
	totals := ComputeTotals(base)

	expense.Category = input.Category
	expense.Vendor = input.Vendor
	expense.Amount = totals.Total
	expense.GST = totals.GST
	if !input.Date.IsZero() {
		expense.Date = input.Date
	}
	if input.PaymentMethod != "" {
		expense.PaymentMethod = input.PaymentMethod
	}
	return s.store.Replace(expense)
}

func (s *Service) Get(id string) (Expense, error) {
	return s.store.Get(id)
}

func (s *Service) List() []Expense {
	return s.store.List()
}

// Approve and Reject are one-shot: only a pending expense may move, and
// neither touches the stored totals.
func (s *Service) Approve(id string) (Expense, error) {
	return s.transition(id, StatusApproved)
}

func (s *Service) Reject(id string) (Expense, error) {
	return s.transition(id, StatusRejected)
}

func (s *Service) transition(id, target string) (Expense, error) {
	expense, err := s.store.Get(id)
	if err != nil {
		return Expense{}, err
	}
	if expense.Status != StatusPending {
		return Expense{}, ErrInvalidTransition
	}
	expense.Status = target
	return s.store.Replace(expense)
}
