package expense

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Store struct {
	mu       sync.RWMutex
	expenses []Expense
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Append(expense Expense) Expense {
	s.mu.Lock()
	defer s.mu.Unlock()

	expense.ID = uuid.NewString()
	expense.CreatedAt = time.Now().UTC()
	s.expenses = append(s.expenses, expense)
	return expense
}

func (s *Store) Get(id string) (Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, expense := range s.expenses {
		if expense.ID == id {
			return expense, nil
		}
	}
	return Expense{}, ErrExpenseNotFound
}

func (s *Store) Replace(expense Expense) (Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.expenses {
		if existing.ID == expense.ID {
			expense.CreatedAt = existing.CreatedAt
			s.expenses[i] = expense
			return expense, nil
		}
	}
	return Expense{}, ErrExpenseNotFound
}

func (s *Store) List() []Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}
