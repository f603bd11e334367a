package model

// Filters narrows an employee search beyond the mandatory org scope.
// Empty slices and empty search mean "no constraint".
type Filters struct {
	Statuses          []string
	Locations         []string
	Companies         []string
	Departments       []string
	Positions         []string
	Search            string
	IncludeTerminated bool
}
