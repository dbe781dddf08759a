package hr

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store keeps the employee directory in memory. Mutations replace records
// in place by ID so readers always see whole employees.
type Store struct {
	mu        sync.RWMutex
	employees []Employee
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Create(employee Employee) Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	employee.ID = uuid.NewString()
	if employee.Status == "" {
		employee.Status = StatusActive
	}
	employee.CreatedAt = time.Now().UTC()
	s.employees = append(s.employees, employee)
	return employee
}

func (s *Store) Get(id string) (Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, employee := range s.employees {
		if employee.ID == id {
			return employee, nil
		}
	}
	return Employee{}, ErrEmployeeNotFound
}

func (s *Store) Update(employee Employee) (Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.employees {
		if existing.ID == employee.ID {
			employee.CreatedAt = existing.CreatedAt
			s.employees[i] = employee
			return employee, nil
		}
	}
	return Employee{}, ErrEmployeeNotFound
}

func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, employee := range s.employees {
		if employee.ID == id {
			s.employees = append(s.employees[:i], s.employees[i+1:]...)
			return nil
		}
	}
	return ErrEmployeeNotFound
}

func (s *Store) List() []Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Employee, len(s.employees))
	copy(out, s.employees)
	return out
}

func (s *Store) ListByStatus(status string) []Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Employee
	for _, employee := range s.employees {
		if employee.Status == status {
			out = append(out, employee)
		}
	}
	return out
}
