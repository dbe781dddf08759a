package payroll

import (
	"reflect"
	"testing"

	"fsadmin/internal/domain/hr"
)

func TestDeriveStructureRatios(t *testing.T) {
	structure := DeriveStructure(85000)

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"basic", structure.Basic, 42500},
		{"hra", structure.HRA, 17000},
		{"da", structure.DA, 12750},
		{"special allowance", structure.SpecialAllowance, 8500},
		{"other allowances", structure.OtherAllowances, 4250},
		{"conveyance", structure.Conveyance, 1600},
		{"medical", structure.Medical, 1250},
		{"pf", structure.PF, 10200},
		{"esic", structure.ESIC, 637.50},
		{"professional tax", structure.ProfessionalTax, 200},
	}
	for _, check := range checks {
		if check.got != check.want {
			t.Fatalf("%s: expected %v, got %v", check.name, check.want, check.got)
		}
	}
}

func TestDeriveStructureDegeneratesToZeros(t *testing.T) {
	for _, base := range []float64{0, -1, -85000} {
		structure := DeriveStructure(base)
		if structure != (SalaryStructure{}) {
			t.Fatalf("base %v: expected all-zero structure, got %+v", base, structure)
		}
	}
}

func TestDeriveStructureIsIdempotent(t *testing.T) {
	first := DeriveStructure(62350)
	second := DeriveStructure(62350)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical structures, got %+v vs %+v", first, second)
	}
}

func TestDeriveStructureEarningsMonotonic(t *testing.T) {
	earningsTotal := func(s SalaryStructure) float64 {
		return s.Basic + s.HRA + s.DA + s.Conveyance + s.Medical + s.SpecialAllowance + s.OtherAllowances
	}

	previous := earningsTotal(DeriveStructure(1000))
	for _, base := range []float64{5000, 20000, 47500, 85000, 240000} {
		current := earningsTotal(DeriveStructure(base))
		if current <= previous {
			t.Fatalf("earnings total not monotonic at base %v: %v <= %v", base, current, previous)
		}
		previous = current
	}
}

func TestAssembleSlipComponents(t *testing.T) {
	employee := hr.Employee{
		ID:          "emp-1",
		Name:        "Ravi Kumar",
		Designation: "Site Supervisor",
		UAN:         "101234567890",
		ESICNumber:  "3100123456",
	}
	structure := DeriveStructure(85000)
	structure.OtherDeductions = 500

	slip := AssembleSlip(employee, structure, "2026-08", 0)

	if slip.PaidDays != DefaultPaidDays {
		t.Fatalf("expected default paid days %d, got %d", DefaultPaidDays, slip.PaidDays)
	}
	if slip.Earnings[ComponentCCA] != structure.Conveyance {
		t.Fatalf("expected conveyance under cca, got %v", slip.Earnings[ComponentCCA])
	}
	if slip.Earnings[ComponentWashing] != FixedWashingAllowance {
		t.Fatalf("expected washing allowance %v, got %v", FixedWashingAllowance, slip.Earnings[ComponentWashing])
	}
	if slip.Earnings[ComponentLeave] != 0 || slip.Earnings[ComponentBonus] != 0 {
		t.Fatal("leave and bonus must default to zero")
	}
	if _, ok := slip.Earnings["specialAllowance"]; ok {
		t.Fatal("special allowance must not appear on the slip")
	}
	if slip.Deductions[ComponentWelfareFund] != FixedWelfareFund {
		t.Fatalf("expected welfare fund %v, got %v", FixedWelfareFund, slip.Deductions[ComponentWelfareFund])
	}
	if slip.Deductions[ComponentMonthly] != 500 {
		t.Fatalf("expected monthly deductions 500, got %v", slip.Deductions[ComponentMonthly])
	}
}

func TestAssembleSlipNetInvariant(t *testing.T) {
	for _, base := range []float64{18000, 42000, 85000, 130000} {
		structure := DeriveStructure(base)
		slip := AssembleSlip(hr.Employee{ID: "e"}, structure, "2026-08", 26)

		want := SumComponents(slip.Earnings) - SumComponents(slip.Deductions)
		if slip.NetSalary != want {
			t.Fatalf("base %v: net %v does not equal earnings-deductions %v", base, slip.NetSalary, want)
		}
	}
}
