package hr

import "time"

// Employee is a directory entry for one member of staff. BaseSalary is the
// gross monthly figure the payroll structure is derived from.
type Employee struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Designation string    `json:"designation"`
	BaseSalary  float64   `json:"baseSalary"`
	UAN         string    `json:"uan"`
	ESICNumber  string    `json:"esicNumber"`
	Status      string    `json:"status"`
	JoinedAt    time.Time `json:"joinedAt"`
	CreatedAt   time.Time `json:"createdAt"`
}
