package payroll

// Fixed business constants for the monthly salary split. These are company
// policy, not configuration.
const (
	RatioBasic            = 0.50
	RatioHRA              = 0.20
	RatioDA               = 0.15
	RatioSpecialAllowance = 0.10
	RatioOtherAllowances  = 0.05
	RatioPF               = 0.12
	RatioESIC             = 0.0075

	FixedConveyance       = 1600.0
	FixedMedical          = 1250.0
	FixedProfessionalTax  = 200.0
	FixedWashingAllowance = 800.0
	FixedWelfareFund      = 25.0

	DefaultPaidDays = 26

	StatusPending   = "pending"
	StatusProcessed = "processed"
)

// Component keys used in slip earnings and deductions breakdowns. The slip
// carries conveyance under "cca", matching the printed payslip layout.
const (
	ComponentBasic           = "basic"
	ComponentDA              = "da"
	ComponentHRA             = "hra"
	ComponentCCA             = "cca"
	ComponentWashing         = "washingAllowance"
	ComponentLeave           = "leave"
	ComponentMedical         = "medical"
	ComponentBonus           = "bonus"
	ComponentOtherAllowances = "otherAllowances"

	ComponentPF              = "pf"
	ComponentESIC            = "esic"
	ComponentMonthly         = "monthlyDeductions"
	ComponentWelfareFund     = "welfareFund"
	ComponentProfessionalTax = "professionalTax"
)
