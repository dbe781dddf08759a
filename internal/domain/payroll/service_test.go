package payroll

import (
	"errors"
	"testing"

	"fsadmin/internal/domain/hr"
)

func newTestService(t *testing.T) (*Service, *Store, *hr.Store) {
	t.Helper()
	store := NewStore()
	employees := hr.NewStore()
	return NewService(store, employees), store, employees
}

func TestGenerateSlipOpensPendingRecord(t *testing.T) {
	service, store, employees := newTestService(t)
	employee := employees.Create(hr.Employee{Name: "Ravi Kumar", BaseSalary: 85000})
	if _, err := service.AutoCalculate(employee.ID); err != nil {
		t.Fatalf("auto calculate: %v", err)
	}

	slip, err := service.GenerateSlip(employee.ID, "2026-08", 26)
	if err != nil {
		t.Fatalf("generate slip: %v", err)
	}
	if slip.ID == "" {
		t.Fatal("expected slip to be assigned an id")
	}

	records := store.ListRecords()
	if len(records) != 1 {
		t.Fatalf("expected one payroll record, got %d", len(records))
	}
	record := records[0]
	if record.Status != StatusPending {
		t.Fatalf("expected pending record, got %s", record.Status)
	}
	if record.NetSalary != slip.NetSalary {
		t.Fatalf("record net %v does not match slip net %v", record.NetSalary, slip.NetSalary)
	}

	// Generating again for the same month keeps the existing record.
	if _, err := service.GenerateSlip(employee.ID, "2026-08", 26); err != nil {
		t.Fatalf("second generate: %v", err)
	}
	if got := len(store.ListRecords()); got != 1 {
		t.Fatalf("expected record reuse, got %d records", got)
	}
}

func TestGenerateSlipDoesNotMutateStructure(t *testing.T) {
	service, store, employees := newTestService(t)
	employee := employees.Create(hr.Employee{Name: "Meena Joshi", BaseSalary: 60000})
	before, err := service.AutoCalculate(employee.ID)
	if err != nil {
		t.Fatalf("auto calculate: %v", err)
	}

	if _, err := service.GenerateSlip(employee.ID, "2026-08", 22); err != nil {
		t.Fatalf("generate slip: %v", err)
	}

	after, err := store.StructureFor(employee.ID)
	if err != nil {
		t.Fatalf("structure lookup: %v", err)
	}
	if before != after {
		t.Fatalf("structure changed by slip generation: %+v vs %+v", before, after)
	}
}

func TestGenerateSlipWithoutStructure(t *testing.T) {
	service, _, employees := newTestService(t)
	employee := employees.Create(hr.Employee{Name: "No Structure", BaseSalary: 30000})

	if _, err := service.GenerateSlip(employee.ID, "2026-08", 26); !errors.Is(err, ErrStructureNotFound) {
		t.Fatalf("expected ErrStructureNotFound, got %v", err)
	}
}

func TestGenerateMonthlySkipsMissingStructures(t *testing.T) {
	service, _, employees := newTestService(t)

	withStructure := employees.Create(hr.Employee{Name: "A", BaseSalary: 40000})
	missing := employees.Create(hr.Employee{Name: "B", BaseSalary: 50000})
	inactive := employees.Create(hr.Employee{Name: "C", BaseSalary: 60000, Status: hr.StatusInactive})
	if _, err := service.AutoCalculate(withStructure.ID); err != nil {
		t.Fatalf("auto calculate: %v", err)
	}

	result := service.GenerateMonthly("2026-08", 26)
	if result.Generated != 1 {
		t.Fatalf("expected 1 generated, got %d", result.Generated)
	}
	if len(result.Skipped) != 1 || result.Skipped[0] != missing.ID {
		t.Fatalf("expected %s skipped, got %v", missing.ID, result.Skipped)
	}
	for _, slip := range service.Slips("") {
		if slip.EmployeeID == inactive.ID {
			t.Fatal("inactive employee must not receive a slip")
		}
	}
}

func TestMarkProcessedIsOneWay(t *testing.T) {
	service, store, employees := newTestService(t)
	employee := employees.Create(hr.Employee{Name: "Ravi Kumar", BaseSalary: 85000})
	if _, err := service.AutoCalculate(employee.ID); err != nil {
		t.Fatalf("auto calculate: %v", err)
	}
	if _, err := service.GenerateSlip(employee.ID, "2026-08", 26); err != nil {
		t.Fatalf("generate slip: %v", err)
	}
	record := store.ListRecords()[0]

	processed, err := service.MarkProcessed(record.ID, "HDFC ****2211")
	if err != nil {
		t.Fatalf("mark processed: %v", err)
	}
	if processed.Status != StatusProcessed {
		t.Fatalf("expected processed status, got %s", processed.Status)
	}
	if processed.PaymentDate == nil {
		t.Fatal("expected payment date stamp")
	}

	again, err := service.MarkProcessed(record.ID, "other bank")
	if err != nil {
		t.Fatalf("repeat mark processed: %v", err)
	}
	if !again.PaymentDate.Equal(*processed.PaymentDate) || again.BankDetails != processed.BankDetails {
		t.Fatal("repeat processing must be a no-op")
	}

	if _, err := service.MarkProcessed("missing", ""); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestSummaryDerivedFromRecords(t *testing.T) {
	service, store, employees := newTestService(t)
	for _, base := range []float64{40000, 85000} {
		employee := employees.Create(hr.Employee{Name: "E", BaseSalary: base})
		if _, err := service.AutoCalculate(employee.ID); err != nil {
			t.Fatalf("auto calculate: %v", err)
		}
		if _, err := service.GenerateSlip(employee.ID, "2026-08", 26); err != nil {
			t.Fatalf("generate slip: %v", err)
		}
	}
	records := store.ListRecords()
	if _, err := service.MarkProcessed(records[0].ID, ""); err != nil {
		t.Fatalf("mark processed: %v", err)
	}

	summary := service.Summary()
	if summary.ProcessedCount != 1 || summary.PendingCount != 1 {
		t.Fatalf("expected 1 processed / 1 pending, got %+v", summary)
	}
	want := records[0].NetSalary + records[1].NetSalary
	if summary.TotalAmount != want {
		t.Fatalf("expected total %v, got %v", want, summary.TotalAmount)
	}
}

func TestEmployeeReferenced(t *testing.T) {
	service, store, employees := newTestService(t)
	employee := employees.Create(hr.Employee{Name: "Ref", BaseSalary: 30000})
	if store.EmployeeReferenced(employee.ID) {
		t.Fatal("fresh employee must not be referenced")
	}
	if _, err := service.AutoCalculate(employee.ID); err != nil {
		t.Fatalf("auto calculate: %v", err)
	}
	if _, err := service.GenerateSlip(employee.ID, "2026-08", 26); err != nil {
		t.Fatalf("generate slip: %v", err)
	}
	if !store.EmployeeReferenced(employee.ID) {
		t.Fatal("employee with payroll history must be referenced")
	}
}
