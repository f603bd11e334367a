package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/sleekhr/employee-directory/internal/model"
)

// MemoryRepository keeps employees in process memory. It backs the server
// when no MySQL DSN is configured and doubles as the test store. Predicate
// semantics are identical to the SQL implementation.
type MemoryRepository struct {
	mu     sync.Mutex
	nextID int64
	rows   []model.Employee
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

var _ EmployeeRepository = (*MemoryRepository)(nil)

func matches(e model.Employee, orgID string, f model.Filters) bool {
	if e.OrgID != orgID {
		return false
	}
	if !f.IncludeTerminated && e.Status == model.StatusTerminated {
		return false
	}
	if !memberOf(f.Statuses, &e.Status) ||
		!memberOf(f.Locations, e.Location) ||
		!memberOf(f.Companies, e.Company) ||
		!memberOf(f.Departments, e.Department) ||
		!memberOf(f.Positions, e.Position) {
		return false
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		term := strings.ToLower(s)
		if !containsFold(&e.FirstName, term) &&
			!containsFold(&e.LastName, term) &&
			!containsFold(e.Department, term) &&
			!containsFold(e.Position, term) &&
			!containsFold(e.Location, term) {
			return false
		}
	}
	return true
}

// memberOf reports whether value satisfies an optional accepted-values set.
// An empty set means no constraint; a nil value never satisfies a set.
func memberOf(set []string, value *string) bool {
	if len(set) == 0 {
		return true
	}
	if value == nil {
		return false
	}
	for _, s := range set {
		if s == *value {
			return true
		}
	}
	return false
}

func containsFold(value *string, lowerTerm string) bool {
	if value == nil {
		return false
	}
	return strings.Contains(strings.ToLower(*value), lowerTerm)
}

func (r *MemoryRepository) FindByOrg(_ context.Context, orgID string, f model.Filters) ([]model.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []model.Employee{}
	for _, e := range r.rows {
		if matches(e, orgID, f) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *MemoryRepository) CountByOrg(ctx context.Context, orgID string, f model.Filters) (int, error) {
	rows, err := r.FindByOrg(ctx, orgID, f)
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (r *MemoryRepository) Insert(_ context.Context, e model.Employee) (model.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e.ID = r.nextID
	r.nextID++
	r.rows = append(r.rows, e)
	return e, nil
}

func (r *MemoryRepository) BulkInsert(_ context.Context, es []model.Employee) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range es {
		e.ID = r.nextID
		r.nextID++
		r.rows = append(r.rows, e)
	}
	return len(es), nil
}

func (r *MemoryRepository) AllByOrg(_ context.Context, orgID string) ([]model.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []model.Employee{}
	for _, e := range r.rows {
		if e.OrgID == orgID {
			out = append(out, e)
		}
	}
	return out, nil
}
