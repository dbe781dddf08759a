package payroll

import (
	"time"

	"fsadmin/internal/domain/hr"
)

type Service struct {
	store     *Store
	employees *hr.Store
}

func NewService(store *Store, employees *hr.Store) *Service {
	return &Service{store: store, employees: employees}
}

// AutoCalculate derives the structure from the employee's current base
// salary and replaces whatever was stored before.
func (s *Service) AutoCalculate(employeeID string) (SalaryStructure, error) {
	employee, err := s.employees.Get(employeeID)
	if err != nil {
		return SalaryStructure{}, err
	}
	structure := DeriveStructure(employee.BaseSalary)
	structure.EmployeeID = employee.ID
	return s.store.SetStructure(structure), nil
}

// Override stores a manually edited structure wholesale.
func (s *Service) Override(structure SalaryStructure) (SalaryStructure, error) {
	if _, err := s.employees.Get(structure.EmployeeID); err != nil {
		return SalaryStructure{}, err
	}
	return s.store.SetStructure(structure), nil
}

func (s *Service) StructureFor(employeeID string) (SalaryStructure, error) {
	return s.store.StructureFor(employeeID)
}

// GenerateSlip assembles and appends the slip for one employee and month,
// and opens a pending payroll record for the month if none exists. The
// stored structure is read, never mutated.
func (s *Service) GenerateSlip(employeeID, month string, paidDays int) (SalarySlip, error) {
	employee, err := s.employees.Get(employeeID)
	if err != nil {
		return SalarySlip{}, err
	}
	structure, err := s.store.StructureFor(employeeID)
	if err != nil {
		return SalarySlip{}, err
	}

	slip := s.store.AppendSlip(AssembleSlip(employee, structure, month, paidDays))
	s.store.EnsureRecord(PayrollRecord{
		EmployeeID:  employee.ID,
		Month:       month,
		BasicSalary: structure.Basic,
		Allowances:  SumComponents(slip.Earnings) - structure.Basic,
		Deductions:  SumComponents(slip.Deductions),
		NetSalary:   slip.NetSalary,
	})
	return slip, nil
}

// GenerateMonthly runs slip generation for every active employee. Employees
// without a structure are skipped, not fatal; the run is best-effort.
func (s *Service) GenerateMonthly(month string, paidDays int) BulkResult {
	var result BulkResult
	for _, employee := range s.employees.ListByStatus(hr.StatusActive) {
		if _, err := s.GenerateSlip(employee.ID, month, paidDays); err != nil {
			result.Skipped = append(result.Skipped, employee.ID)
			continue
		}
		result.Generated++
	}
	return result
}

func (s *Service) Slip(id string) (SalarySlip, error) {
	return s.store.GetSlip(id)
}

func (s *Service) Slips(employeeID string) []SalarySlip {
	return s.store.ListSlips(employeeID)
}

func (s *Service) Records() []PayrollRecord {
	return s.store.ListRecords()
}

func (s *Service) MarkProcessed(recordID, bankDetails string) (PayrollRecord, error) {
	return s.store.MarkProcessed(recordID, bankDetails, time.Now().UTC())
}

func (s *Service) Summary() Summary {
	return s.store.Summary()
}
