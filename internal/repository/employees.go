package repository

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sleekhr/employee-directory/internal/model"
)

// EmployeeRepository defines persistence for the employees table.
// FindByOrg and CountByOrg apply the same predicate; Find returns the full
// match set ordered by ascending id (pagination happens in the service).
type EmployeeRepository interface {
	FindByOrg(ctx context.Context, orgID string, f model.Filters) ([]model.Employee, error)
	CountByOrg(ctx context.Context, orgID string, f model.Filters) (int, error)
	Insert(ctx context.Context, e model.Employee) (model.Employee, error)
	BulkInsert(ctx context.Context, es []model.Employee) (int, error)
	AllByOrg(ctx context.Context, orgID string) ([]model.Employee, error)
}

type EmployeeRepositoryImpl struct {
	db *sqlx.DB
}

func NewEmployeeRepository(db *sqlx.DB) *EmployeeRepositoryImpl {
	return &EmployeeRepositoryImpl{db: db}
}

var _ EmployeeRepository = (*EmployeeRepositoryImpl)(nil)

const employeeColumns = "id, org_id, first_name, last_name, department, position, location, status, company"

// searchColumns are matched by the free-text search. Company is deliberately
// not searchable.
var searchColumns = []string{"first_name", "last_name", "department", "position", "location"}

// buildPredicate renders the filter set into a WHERE clause with `?`
// placeholders. Slice args are expanded later via sqlx.In.
func buildPredicate(orgID string, f model.Filters) (string, []any) {
	conds := []string{"org_id = ?"}
	args := []any{orgID}

	if !f.IncludeTerminated {
		conds = append(conds, "status <> ?")
		args = append(args, model.StatusTerminated)
	}

	set := func(col string, values []string) {
		if len(values) == 0 {
			return
		}
		conds = append(conds, col+" IN (?)")
		args = append(args, values)
	}
	set("status", f.Statuses)
	set("location", f.Locations)
	set("company", f.Companies)
	set("department", f.Departments)
	set("position", f.Positions)

	if s := strings.TrimSpace(f.Search); s != "" {
		pattern := "%" + strings.ToLower(s) + "%"
		likes := make([]string, 0, len(searchColumns))
		for _, col := range searchColumns {
			likes = append(likes, "LOWER("+col+") LIKE ?")
			args = append(args, pattern)
		}
		conds = append(conds, "("+strings.Join(likes, " OR ")+")")
	}

	return strings.Join(conds, " AND "), args
}

func (r *EmployeeRepositoryImpl) FindByOrg(ctx context.Context, orgID string, f model.Filters) ([]model.Employee, error) {
	where, args := buildPredicate(orgID, f)
	q := "SELECT " + employeeColumns + " FROM employees WHERE " + where + " ORDER BY id ASC"
	q, expanded, err := sqlx.In(q, args...)
	if err != nil {
		return nil, err
	}
	q = r.db.Rebind(q)

	var rows []model.Employee
	if err := r.db.SelectContext(ctx, &rows, q, expanded...); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *EmployeeRepositoryImpl) CountByOrg(ctx context.Context, orgID string, f model.Filters) (int, error) {
	where, args := buildPredicate(orgID, f)
	q := "SELECT COUNT(*) FROM employees WHERE " + where
	q, expanded, err := sqlx.In(q, args...)
	if err != nil {
		return 0, err
	}
	q = r.db.Rebind(q)

	var count int
	if err := r.db.GetContext(ctx, &count, q, expanded...); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *EmployeeRepositoryImpl) Insert(ctx context.Context, e model.Employee) (model.Employee, error) {
	const q = `
		INSERT INTO employees
		    (org_id, first_name, last_name, department, position, location, status, company)
		VALUES
		    (?, ?, ?, ?, ?, ?, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, q,
		e.OrgID, e.FirstName, e.LastName, e.Department, e.Position, e.Location, e.Status, e.Company,
	)
	if err != nil {
		return model.Employee{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Employee{}, err
	}
	e.ID = id
	return e, nil
}

// BulkInsert writes all records in a single transaction and returns how many
// rows were written.
func (r *EmployeeRepositoryImpl) BulkInsert(ctx context.Context, es []model.Employee) (int, error) {
	if len(es) == 0 {
		return 0, nil
	}
	const q = `
		INSERT INTO employees
		    (org_id, first_name, last_name, department, position, location, status, company)
		VALUES
		    (:org_id, :first_name, :last_name, :department, :position, :location, :status, :company)
	`
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.NamedExecContext(ctx, q, es); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(es), nil
}

func (r *EmployeeRepositoryImpl) AllByOrg(ctx context.Context, orgID string) ([]model.Employee, error) {
	q := "SELECT " + employeeColumns + " FROM employees WHERE org_id = ? ORDER BY id ASC"
	var rows []model.Employee
	if err := r.db.SelectContext(ctx, &rows, q, orgID); err != nil {
		return nil, err
	}
	return rows, nil
}
