package employee

import "github.com/sleekhr/employee-directory/internal/model"

// defaultColumns apply to organizations without explicit configuration.
var defaultColumns = []string{"department", "position", "location"}

// columnAccessors enumerate the closed set of exposable optional fields.
// Serialization only ever reads through this map, so a misconfigured column
// name can never leak another attribute.
var columnAccessors = map[string]func(model.Employee) *string{
	"department": func(e model.Employee) *string { return e.Department },
	"position":   func(e model.Employee) *string { return e.Position },
	"location":   func(e model.Employee) *string { return e.Location },
}

// ColumnPolicy decides which optional employee fields an organization
// exposes in serialized output. Configuration is fixed at construction.
type ColumnPolicy struct {
	configured map[string][]string
}

func NewColumnPolicy(configured map[string][]string) ColumnPolicy {
	return ColumnPolicy{configured: configured}
}

// Configured returns the organization's raw configured column list, default
// when absent. The filter-options endpoint surfaces this list as-is.
func (p ColumnPolicy) Configured(orgID string) []string {
	if cols, ok := p.configured[orgID]; ok {
		return cols
	}
	return defaultColumns
}

// Visible returns the configured list restricted to the allowed set, order
// preserved. Unknown names are dropped silently.
func (p ColumnPolicy) Visible(orgID string) []string {
	visible := []string{}
	for _, col := range p.Configured(orgID) {
		if _, ok := columnAccessors[col]; ok {
			visible = append(visible, col)
		}
	}
	return visible
}

// Serialize renders an employee for output. Identity fields are always
// present; beyond those, only the org's visible columns and the
// visible_columns list itself appear. org_id and company stay internal.
func (p ColumnPolicy) Serialize(e model.Employee, orgID string) map[string]any {
	visible := p.Visible(orgID)

	out := map[string]any{
		"id":         e.ID,
		"first_name": e.FirstName,
		"last_name":  e.LastName,
		"status":     e.Status,
	}
	for _, col := range visible {
		out[col] = columnAccessors[col](e)
	}
	out["visible_columns"] = visible
	return out
}
