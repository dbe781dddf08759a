package payroll

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store holds structures, slips and payroll records in memory. Every
// mutation is one synchronous transaction under the lock.
type Store struct {
	mu         sync.RWMutex
	structures map[string]SalaryStructure
	slips      []SalarySlip
	records    []PayrollRecord
}

func NewStore() *Store {
	return &Store{structures: make(map[string]SalaryStructure)}
}

// SetStructure replaces the employee's structure wholesale. Auto-calculate
// and manual override both land here; there is no merging.
func (s *Store) SetStructure(structure SalaryStructure) SalaryStructure {
	s.mu.Lock()
	defer s.mu.Unlock()

	structure.UpdatedAt = time.Now().UTC()
	s.structures[structure.EmployeeID] = structure
	return structure
}

func (s *Store) StructureFor(employeeID string) (SalaryStructure, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	structure, ok := s.structures[employeeID]
	if !ok {
		return SalaryStructure{}, ErrStructureNotFound
	}
	return structure, nil
}

func (s *Store) AppendSlip(slip SalarySlip) SalarySlip {
	s.mu.Lock()
	defer s.mu.Unlock()

	slip.ID = uuid.NewString()
	slip.CreatedAt = time.Now().UTC()
	s.slips = append(s.slips, slip)
	return slip
}

func (s *Store) GetSlip(id string) (SalarySlip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, slip := range s.slips {
		if slip.ID == id {
			return slip, nil
		}
	}
	return SalarySlip{}, ErrSlipNotFound
}

func (s *Store) ListSlips(employeeID string) []SalarySlip {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []SalarySlip
	for _, slip := range s.slips {
		if employeeID == "" || slip.EmployeeID == employeeID {
			out = append(out, slip)
		}
	}
	return out
}

// EnsureRecord appends a pending record for the employee and month unless
// one already exists, in which case the existing record wins.
func (s *Store) EnsureRecord(record PayrollRecord) PayrollRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.records {
		if existing.EmployeeID == record.EmployeeID && existing.Month == record.Month {
			return existing
		}
	}
	record.ID = uuid.NewString()
	record.Status = StatusPending
	s.records = append(s.records, record)
	return record
}

func (s *Store) GetRecord(id string) (PayrollRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, record := range s.records {
		if record.ID == id {
			return record, nil
		}
	}
	return PayrollRecord{}, ErrRecordNotFound
}

func (s *Store) ListRecords() []PayrollRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]PayrollRecord, len(s.records))
	copy(out, s.records)
	return out
}

// MarkProcessed moves a pending record to processed and stamps the payment
// date. Calling it on an already-processed record is a no-op, not an error.
func (s *Store) MarkProcessed(id, bankDetails string, now time.Time) (PayrollRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, record := range s.records {
		if record.ID != id {
			continue
		}
		if record.Status == StatusProcessed {
			return record, nil
		}
		record.Status = StatusProcessed
		record.PaymentDate = &now
		if bankDetails != "" {
			record.BankDetails = bankDetails
		}
		s.records[i] = record
		return record, nil
	}
	return PayrollRecord{}, ErrRecordNotFound
}

// Summary recomputes the aggregate view from the record list. The list is
// small; nothing is cached.
func (s *Store) Summary() Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var summary Summary
	for _, record := range s.records {
		summary.TotalAmount += record.NetSalary
		if record.Status == StatusProcessed {
			summary.ProcessedCount++
		} else {
			summary.PendingCount++
		}
	}
	return summary
}

// EmployeeReferenced reports whether any payroll history mentions the
// employee; the directory refuses hard deletes while it does.
func (s *Store) EmployeeReferenced(employeeID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, record := range s.records {
		if record.EmployeeID == employeeID {
			return true
		}
	}
	for _, slip := range s.slips {
		if slip.EmployeeID == employeeID {
			return true
		}
	}
	return false
}
