package hr

import (
	"errors"
	"testing"
)

type stubChecker struct{ referenced bool }

func (c stubChecker) EmployeeReferenced(string) bool { return c.referenced }

func TestDeleteRefusedWhileReferenced(t *testing.T) {
	store := NewStore()
	service := NewService(store, stubChecker{referenced: true})

	employee := service.Create(Employee{Name: "Ravi Kumar", BaseSalary: 30000})
	if err := service.Delete(employee.ID); !errors.Is(err, ErrEmployeeReferenced) {
		t.Fatalf("expected ErrEmployeeReferenced, got %v", err)
	}
	if _, err := service.Get(employee.ID); err != nil {
		t.Fatalf("employee should survive a refused delete: %v", err)
	}

	deactivated, err := service.Deactivate(employee.ID)
	if err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if deactivated.Status != StatusInactive {
		t.Fatalf("expected inactive status, got %s", deactivated.Status)
	}
}

func TestDeleteRemovesUnreferencedEmployee(t *testing.T) {
	store := NewStore()
	service := NewService(store, stubChecker{referenced: false})

	employee := service.Create(Employee{Name: "Meena Joshi", BaseSalary: 45000})
	if err := service.Delete(employee.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := service.Get(employee.ID); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound after delete, got %v", err)
	}
}

func TestListActiveFiltersInactive(t *testing.T) {
	store := NewStore()
	service := NewService(store)

	service.Create(Employee{Name: "A", BaseSalary: 20000})
	second := service.Create(Employee{Name: "B", BaseSalary: 25000})
	if _, err := service.Deactivate(second.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	active := service.ListActive()
	if len(active) != 1 || active[0].Name != "A" {
		t.Fatalf("expected only A active, got %+v", active)
	}
}
