package payroll

import "errors"

var (
	ErrStructureNotFound = errors.New("salary structure not found")
	ErrSlipNotFound      = errors.New("salary slip not found")
	ErrRecordNotFound    = errors.New("payroll record not found")
)
