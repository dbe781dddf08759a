package payroll

import "fsadmin/internal/domain/hr"

// DeriveStructure splits a base monthly salary into the fixed-ratio
// components. A zero or negative base yields an all-zero structure rather
// than an error; the dashboard depends on that degenerate result.
func DeriveStructure(baseSalary float64) SalaryStructure {
	if baseSalary <= 0 {
		return SalaryStructure{}
	}
	return SalaryStructure{
		Basic:            baseSalary * RatioBasic,
		HRA:              baseSalary * RatioHRA,
		DA:               baseSalary * RatioDA,
		Conveyance:       FixedConveyance,
		Medical:          FixedMedical,
		SpecialAllowance: baseSalary * RatioSpecialAllowance,
		OtherAllowances:  baseSalary * RatioOtherAllowances,
		PF:               baseSalary * RatioPF,
		ESIC:             baseSalary * RatioESIC,
		ProfessionalTax:  FixedProfessionalTax,
	}
}

// AssembleSlip builds the itemized slip for one employee and month. The
// special allowance never appears on the printed slip; conveyance shows up
// as "cca". Net salary is earnings minus deductions, fixed here and never
// recomputed afterwards.
func AssembleSlip(employee hr.Employee, structure SalaryStructure, month string, paidDays int) SalarySlip {
	if paidDays <= 0 {
		paidDays = DefaultPaidDays
	}

	earnings := map[string]float64{
		ComponentBasic:           structure.Basic,
		ComponentDA:              structure.DA,
		ComponentHRA:             structure.HRA,
		ComponentCCA:             structure.Conveyance,
		ComponentWashing:         FixedWashingAllowance,
		ComponentLeave:           0,
		ComponentMedical:         structure.Medical,
		ComponentBonus:           0,
		ComponentOtherAllowances: structure.OtherAllowances,
	}
	deductions := map[string]float64{
		ComponentPF:              structure.PF,
		ComponentESIC:            structure.ESIC,
		ComponentMonthly:         structure.OtherDeductions,
		ComponentWelfareFund:     FixedWelfareFund,
		ComponentProfessionalTax: structure.ProfessionalTax,
	}

	return SalarySlip{
		EmployeeID:  employee.ID,
		Employee:    employee.Name,
		Designation: employee.Designation,
		UAN:         employee.UAN,
		ESICNumber:  employee.ESICNumber,
		Month:       month,
		PaidDays:    paidDays,
		Earnings:    earnings,
		Deductions:  deductions,
		NetSalary:   SumComponents(earnings) - SumComponents(deductions),
	}
}

func SumComponents(components map[string]float64) float64 {
	var total float64
	for _, amount := range components {
		total += amount
	}
	return total
}
