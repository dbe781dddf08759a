package expense

// GSTRate is the flat 18% surcharge on the base amount.
const GSTRate = 0.18

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)
