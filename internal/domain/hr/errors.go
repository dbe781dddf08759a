package hr

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeReferenced = errors.New("employee is referenced by payroll history")
)
