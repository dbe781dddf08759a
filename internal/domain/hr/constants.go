package hr

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)
