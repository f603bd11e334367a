package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/sleekhr/employee-directory/internal/model"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })
	return sqlx.NewDb(mockDB, "mysql"), mock
}

func employeeRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "org_id", "first_name", "last_name", "department", "position", "location", "status", "company",
	})
}

func TestEmployeeRepository_FindByOrg_DefaultExcludesTerminated(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEmployeeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, org_id, first_name, last_name, department, position, location, status, company FROM employees WHERE org_id = ? AND status <> ? ORDER BY id ASC",
	)).
		WithArgs("org-1", "Terminated").
		WillReturnRows(employeeRows().
			AddRow(1, "org-1", "Amelia", "Last", "Engineering", "Assistant Manager", "Singapore", "Active", "Sleek"))

	rows, err := repo.FindByOrg(context.Background(), "org-1", model.Filters{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, int64(1), rows[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_FindByOrg_ExpandsSetAndSearch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEmployeeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, org_id, first_name, last_name, department, position, location, status, company "+
			"FROM employees WHERE org_id = ? AND status IN (?, ?) AND location IN (?) "+
			"AND (LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(department) LIKE ? OR LOWER(position) LIKE ? OR LOWER(location) LIKE ?) "+
			"ORDER BY id ASC",
	)).
		WithArgs("org-1", "Active", "Not started", "Singapore",
			"%jane%", "%jane%", "%jane%", "%jane%", "%jane%").
		WillReturnRows(employeeRows())

	_, err := repo.FindByOrg(context.Background(), "org-1", model.Filters{
		Statuses:          []string{"Active", "Not started"},
		Locations:         []string{"Singapore"},
		Search:            "Jane",
		IncludeTerminated: true,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_CountByOrg_SamePredicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEmployeeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT COUNT(*) FROM employees WHERE org_id = ? AND status <> ? AND department IN (?, ?)",
	)).
		WithArgs("org-1", "Terminated", "Engineering", "Finance").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.CountByOrg(context.Background(), "org-1", model.Filters{
		Departments: []string{"Engineering", "Finance"},
	})
	require.NoError(t, err)
	require.Equal(t, 7, count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Insert_ReturnsAssignedID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEmployeeRepository(db)

	mock.ExpectExec("INSERT INTO employees").
		WithArgs("org-1", "Jane", "Doe", nil, nil, nil, "Active", nil).
		WillReturnResult(sqlmock.NewResult(42, 1))

	created, err := repo.Insert(context.Background(), model.Employee{
		OrgID: "org-1", FirstName: "Jane", LastName: "Doe", Status: "Active",
	})
	require.NoError(t, err)
	require.Equal(t, int64(42), created.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_BulkInsert_SingleTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEmployeeRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO employees").
		WillReturnResult(sqlmock.NewResult(2, 2))
	mock.ExpectCommit()

	n, err := repo.BulkInsert(context.Background(), []model.Employee{
		{OrgID: "org-1", FirstName: "Jane", LastName: "Doe", Status: "Active"},
		{OrgID: "org-1", FirstName: "John", LastName: "Doe", Status: "Active"},
	})
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.NoError(t, mock.ExpectationsWereMet())
}
