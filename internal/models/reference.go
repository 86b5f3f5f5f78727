package models

// Hospital is a static reference entity used when assigning claims.
type Hospital struct {
	ID      string
	Name    string
	Address string
	Phone   string
}

// Agent is a static reference entity used when assigning claims.
type Agent struct {
	ID      string
	Name    string
	Company string
	Phone   string
}
