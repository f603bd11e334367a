package employee

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sleekhr/employee-directory/internal/model"
)

func strptr(s string) *string { return &s }

func TestColumnPolicy_DefaultOnUnknownOrg(t *testing.T) {
	p := NewColumnPolicy(map[string][]string{"org-2": {"department", "location"}})

	require.Equal(t, []string{"department", "position", "location"}, p.Visible("org-unknown"))
	require.Equal(t, []string{"department", "location"}, p.Visible("org-2"))
}

func TestColumnPolicy_DropsDisallowedColumns(t *testing.T) {
	p := NewColumnPolicy(map[string][]string{
		"org-3": {"department", "salary", "location", "org_id"},
	})

	require.Equal(t, []string{"department", "location"}, p.Visible("org-3"))
	// the raw configured list keeps the bad entries
	require.Equal(t, []string{"department", "salary", "location", "org_id"}, p.Configured("org-3"))
}

func TestColumnPolicy_SerializeWhitelist(t *testing.T) {
	p := NewColumnPolicy(map[string][]string{"org-2": {"department", "location"}})
	e := model.Employee{
		ID:         7,
		OrgID:      "org-2",
		FirstName:  "Jane",
		LastName:   "Doe",
		Department: strptr("Engineering"),
		Position:   strptr("Engineer"),
		Location:   strptr("Singapore"),
		Status:     "Active",
		Company:    strptr("Sleek"),
	}

	out := p.Serialize(e, "org-2")

	require.Equal(t, int64(7), out["id"])
	require.Equal(t, "Jane", out["first_name"])
	require.Equal(t, "Doe", out["last_name"])
	require.Equal(t, "Active", out["status"])
	require.Equal(t, strptr("Engineering"), out["department"])
	require.Equal(t, strptr("Singapore"), out["location"])
	require.Equal(t, []string{"department", "location"}, out["visible_columns"])

	// position is configured away; org_id and company are never exposed
	require.NotContains(t, out, "position")
	require.NotContains(t, out, "org_id")
	require.NotContains(t, out, "company")

	allowed := map[string]struct{}{
		"id": {}, "first_name": {}, "last_name": {}, "status": {},
		"department": {}, "location": {}, "visible_columns": {},
	}
	for key := range out {
		require.Contains(t, allowed, key)
	}
}

func TestColumnPolicy_SerializeIncludesNilVisibleColumns(t *testing.T) {
	p := NewColumnPolicy(nil)
	e := model.Employee{ID: 1, FirstName: "Jane", LastName: "Doe", Status: "Active"}

	out := p.Serialize(e, "org-1")

	require.Contains(t, out, "department")
	require.Contains(t, out, "position")
	require.Contains(t, out, "location")
	require.Nil(t, out["department"].(*string))
}
