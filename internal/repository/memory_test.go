package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sleekhr/employee-directory/internal/model"
)

func strptr(s string) *string { return &s }

func seedRepo(t *testing.T) *MemoryRepository {
	t.Helper()
	r := NewMemoryRepository()
	ctx := context.Background()
	_, err := r.BulkInsert(ctx, []model.Employee{
		{OrgID: "org-1", FirstName: "Amelia", LastName: "Last", Department: strptr("Engineering"), Position: strptr("Assistant Manager"), Location: strptr("Singapore"), Status: "Active", Company: strptr("Sleek")},
		{OrgID: "org-1", FirstName: "Ana", LastName: "Test", Department: strptr("Finance"), Position: strptr("Analyst"), Location: strptr("London"), Status: "Active", Company: strptr("Sleek")},
		{OrgID: "org-1", FirstName: "Arlani", LastName: "Sosaia", Status: "Not started"},
		{OrgID: "org-1", FirstName: "Terminated", LastName: "Employee", Location: strptr("Nowhere"), Status: "Terminated", Company: strptr("Sleek")},
		{OrgID: "org-2", FirstName: "OtherOrg", LastName: "User", Department: strptr("Other Department"), Location: strptr("Other City"), Status: "Active", Company: strptr("Other Co")},
	})
	require.NoError(t, err)
	return r
}

func TestMemoryRepository_TenantIsolation(t *testing.T) {
	r := seedRepo(t)
	ctx := context.Background()

	rows, err := r.FindByOrg(ctx, "org-2", model.Filters{IncludeTerminated: true})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "OtherOrg", rows[0].FirstName)

	for _, e := range rows {
		require.Equal(t, "org-2", e.OrgID)
	}

	rows, err = r.FindByOrg(ctx, "org-1", model.Filters{Search: "OtherOrg"})
	require.NoError(t, err)
	require.Empty(t, rows, "org-1 must never see org-2 records")
}

func TestMemoryRepository_TerminatedExclusion(t *testing.T) {
	r := seedRepo(t)
	ctx := context.Background()

	rows, err := r.FindByOrg(ctx, "org-1", model.Filters{})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for _, e := range rows {
		require.NotEqual(t, model.StatusTerminated, e.Status)
	}

	rows, err = r.FindByOrg(ctx, "org-1", model.Filters{IncludeTerminated: true})
	require.NoError(t, err)
	require.Len(t, rows, 4)
}

func TestMemoryRepository_SetFilters(t *testing.T) {
	r := seedRepo(t)
	ctx := context.Background()

	rows, err := r.FindByOrg(ctx, "org-1", model.Filters{Statuses: []string{"Not started"}})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Arlani", rows[0].FirstName)

	rows, err = r.FindByOrg(ctx, "org-1", model.Filters{Locations: []string{"Singapore", "London"}})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// nil optional fields never satisfy a set filter
	rows, err = r.FindByOrg(ctx, "org-1", model.Filters{Departments: []string{"Engineering"}, Statuses: []string{"Not started"}})
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestMemoryRepository_Search(t *testing.T) {
	r := seedRepo(t)
	ctx := context.Background()

	// case-insensitive substring over names and visible attributes
	rows, err := r.FindByOrg(ctx, "org-1", model.Filters{Search: "singAPore"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Amelia", rows[0].FirstName)

	// company is not searchable
	rows, err = r.FindByOrg(ctx, "org-1", model.Filters{Search: "Sleek"})
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestMemoryRepository_FindCountParity(t *testing.T) {
	r := seedRepo(t)
	ctx := context.Background()

	filters := []model.Filters{
		{},
		{IncludeTerminated: true},
		{Statuses: []string{"Active"}},
		{Search: "a"},
		{Locations: []string{"Singapore"}, Search: "amelia"},
	}
	for _, f := range filters {
		rows, err := r.FindByOrg(ctx, "org-1", f)
		require.NoError(t, err)
		count, err := r.CountByOrg(ctx, "org-1", f)
		require.NoError(t, err)
		require.Equal(t, len(rows), count)
	}
}

func TestMemoryRepository_OrderingByID(t *testing.T) {
	r := seedRepo(t)
	ctx := context.Background()

	rows, err := r.FindByOrg(ctx, "org-1", model.Filters{IncludeTerminated: true})
	require.NoError(t, err)
	for i := 1; i < len(rows); i++ {
		require.Greater(t, rows[i].ID, rows[i-1].ID)
	}
}

func TestMemoryRepository_InsertAssignsAscendingIDs(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	first, err := r.Insert(ctx, model.Employee{OrgID: "org-1", FirstName: "Jane", LastName: "Doe", Status: "Active"})
	require.NoError(t, err)
	second, err := r.Insert(ctx, model.Employee{OrgID: "org-1", FirstName: "John", LastName: "Doe", Status: "Active"})
	require.NoError(t, err)
	require.Equal(t, int64(1), first.ID)
	require.Equal(t, int64(2), second.ID)
}
