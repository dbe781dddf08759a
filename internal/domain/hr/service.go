package hr

// ReferenceChecker reports whether payroll history still points at an
// employee. Deletion is refused while any checker says yes.
type ReferenceChecker interface {
	EmployeeReferenced(employeeID string) bool
}

type Service struct {
	store    *Store
	checkers []ReferenceChecker
}

func NewService(store *Store, checkers ...ReferenceChecker) *Service {
	return &Service{store: store, checkers: checkers}
}

func (s *Service) Create(employee Employee) Employee {
	return s.store.Create(employee)
}

func (s *Service) Get(id string) (Employee, error) {
	return s.store.Get(id)
}

func (s *Service) Update(employee Employee) (Employee, error) {
	return s.store.Update(employee)
}

func (s *Service) List() []Employee {
	return s.store.List()
}

func (s *Service) ListActive() []Employee {
	return s.store.ListByStatus(StatusActive)
}

// Delete removes an employee outright, unless payroll history references
// them, in which case the record survives and the caller should deactivate
// instead.
func (s *Service) Delete(id string) error {
	if _, err := s.store.Get(id); err != nil {
		return err
	}
	for _, checker := range s.checkers {
		if checker.EmployeeReferenced(id) {
			return ErrEmployeeReferenced
		}
	}
	return s.store.Remove(id)
}

func (s *Service) Deactivate(id string) (Employee, error) {
	employee, err := s.store.Get(id)
	if err != nil {
		return Employee{}, err
	}
	employee.Status = StatusInactive
	return s.store.Update(employee)
}
