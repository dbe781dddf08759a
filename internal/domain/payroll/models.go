package payroll

import "time"

// SalaryStructure is the monthly breakdown for one employee. It is either
// auto-derived from the base salary or overridden wholesale by HR; the two
// never merge.
type SalaryStructure struct {
	EmployeeID       string    `json:"employeeId"`
	Basic            float64   `json:"basic"`
	HRA              float64   `json:"hra"`
	DA               float64   `json:"da"`
	Conveyance       float64   `json:"conveyance"`
	Medical          float64   `json:"medical"`
	SpecialAllowance float64   `json:"specialAllowance"`
	OtherAllowances  float64   `json:"otherAllowances"`
	PF               float64   `json:"pf"`
	ESIC             float64   `json:"esic"`
	ProfessionalTax  float64   `json:"professionalTax"`
	TDS              float64   `json:"tds"`
	OtherDeductions  float64   `json:"otherDeductions"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// SalarySlip is an immutable snapshot of one employee's month. NetSalary is
// computed once at assembly and never recalculated.
type SalarySlip struct {
	ID          string             `json:"id"`
	EmployeeID  string             `json:"employeeId"`
	Employee    string             `json:"employee"`
	Designation string             `json:"designation"`
	UAN         string             `json:"uan"`
	ESICNumber  string             `json:"esicNumber"`
	Month       string             `json:"month"`
	PaidDays    int                `json:"paidDays"`
	Earnings    map[string]float64 `json:"earnings"`
	Deductions  map[string]float64 `json:"deductions"`
	NetSalary   float64            `json:"netSalary"`
	CreatedAt   time.Time          `json:"createdAt"`
}

type PayrollRecord struct {
	ID          string     `json:"id"`
	EmployeeID  string     `json:"employeeId"`
	Month       string     `json:"month"`
	BasicSalary float64    `json:"basicSalary"`
	Allowances  float64    `json:"allowances"`
	Deductions  float64    `json:"deductions"`
	NetSalary   float64    `json:"netSalary"`
	Status      string     `json:"status"`
	PaymentDate *time.Time `json:"paymentDate,omitempty"`
	BankDetails string     `json:"bankDetails,omitempty"`
}

// Summary is derived from the record list on every read; nothing is cached.
type Summary struct {
	TotalAmount    float64 `json:"totalAmount"`
	ProcessedCount int     `json:"processedCount"`
	PendingCount   int     `json:"pendingCount"`
}

// BulkResult reports a best-effort monthly generation run.
type BulkResult struct {
	Generated int      `json:"generated"`
	Skipped   []string `json:"skipped,omitempty"`
}
