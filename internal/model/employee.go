package model

import "strings"

// StatusTerminated is excluded from search results by default.
// Status is otherwise an open-ended string, not an enum.
const StatusTerminated = "Terminated"

const StatusActive = "Active"

// Employee is the DB entity persisted in the employees table.
// Optional fields are nil when absent, never empty strings.
type Employee struct {
	ID         int64   `db:"id"`
	OrgID      string  `db:"org_id"`
	FirstName  string  `db:"first_name"`
	LastName   string  `db:"last_name"`
	Department *string `db:"department"`
	Position   *string `db:"position"`
	Location   *string `db:"location"`
	Status     string  `db:"status"`
	Company    *string `db:"company"`
}

// EmployeeInput is a candidate record from the create endpoint or a CSV row.
type EmployeeInput struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Location   string `json:"location"`
	Status     string `json:"status"`
	Company    string `json:"company"`
}

// NewEmployee normalizes input into an Employee owned by orgID.
// Returns (zero, false) when first or last name is blank after trimming.
// Blank optional fields become nil; blank status defaults to "Active".
func NewEmployee(orgID string, in EmployeeInput) (Employee, bool) {
	first := strings.TrimSpace(in.FirstName)
	last := strings.TrimSpace(in.LastName)
	if first == "" || last == "" {
		return Employee{}, false
	}

	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = StatusActive
	}

	return Employee{
		OrgID:      orgID,
		FirstName:  first,
		LastName:   last,
		Department: optional(in.Department),
		Position:   optional(in.Position),
		Location:   optional(in.Location),
		Status:     status,
		Company:    optional(in.Company),
	}, true
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
