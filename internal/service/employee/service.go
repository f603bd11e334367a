package employee

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/sleekhr/employee-directory/internal/model"
	"github.com/sleekhr/employee-directory/internal/repository"
)

const defaultPageSize = 50

// ErrValidation signals a create request with a blank first or last name.
var ErrValidation = errors.New("first_name and last_name are required")

// SearchResult is the paginated search payload. Page and PageSize echo the
// request; Total is the full filtered count regardless of pagination.
type SearchResult struct {
	Items    []map[string]any `json:"items"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// FilterOptions aggregates the distinct values an org can filter on.
// VisibleColumns carries the raw configured list, not the serialization
// whitelist; the two intentionally differ for misconfigured entries.
type FilterOptions struct {
	Statuses       []string `json:"statuses"`
	Locations      []string `json:"locations"`
	Companies      []string `json:"companies"`
	Departments    []string `json:"departments"`
	Positions      []string `json:"positions"`
	VisibleColumns []string `json:"visible_columns"`
}

// Service orchestrates employee search, creation, bulk import, filter
// discovery and export on top of the repository and column policy.
type Service struct {
	repo    repository.EmployeeRepository
	columns ColumnPolicy
}

func NewService(repo repository.EmployeeRepository, columns ColumnPolicy) *Service {
	return &Service{repo: repo, columns: columns}
}

// Search returns one page of serialized matches plus the total match count.
// Pages below 1 are clamped to 1; non-positive page sizes fall back to 50.
func (s *Service) Search(ctx context.Context, orgID string, page, pageSize int, f model.Filters) (SearchResult, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	matchesAll, err := s.repo.FindByOrg(ctx, orgID, f)
	if err != nil {
		return SearchResult{}, fmt.Errorf("find employees: %w", err)
	}
	total, err := s.repo.CountByOrg(ctx, orgID, f)
	if err != nil {
		return SearchResult{}, fmt.Errorf("count employees: %w", err)
	}

	start := (page - 1) * pageSize
	if start > len(matchesAll) {
		start = len(matchesAll)
	}
	end := start + pageSize
	if end > len(matchesAll) {
		end = len(matchesAll)
	}

	items := make([]map[string]any, 0, end-start)
	for _, e := range matchesAll[start:end] {
		items = append(items, s.columns.Serialize(e, orgID))
	}

	return SearchResult{Items: items, Total: total, Page: page, PageSize: pageSize}, nil
}

// Create validates and persists one employee and returns its serialized
// form. A blank status is treated as omitted and defaults to "Active".
func (s *Service) Create(ctx context.Context, orgID string, in model.EmployeeInput) (map[string]any, error) {
	e, ok := model.NewEmployee(orgID, in)
	if !ok {
		return nil, ErrValidation
	}
	created, err := s.repo.Insert(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("insert employee: %w", err)
	}
	return s.columns.Serialize(created, orgID), nil
}

// ImportBulk persists every valid record in one logical operation and
// returns how many were accepted. Invalid rows are skipped, never reported
// individually; the only signal is the count.
func (s *Service) ImportBulk(ctx context.Context, orgID string, records []model.EmployeeInput) (int, error) {
	accepted := make([]model.Employee, 0, len(records))
	for _, in := range records {
		if e, ok := model.NewEmployee(orgID, in); ok {
			accepted = append(accepted, e)
		}
	}
	if len(accepted) == 0 {
		return 0, nil
	}
	n, err := s.repo.BulkInsert(ctx, accepted)
	if err != nil {
		return 0, fmt.Errorf("bulk insert employees: %w", err)
	}
	return n, nil
}

// FilterOptions scans every record of the org, terminated included, and
// returns the sorted distinct values per filterable field.
func (s *Service) FilterOptions(ctx context.Context, orgID string) (FilterOptions, error) {
	all, err := s.repo.AllByOrg(ctx, orgID)
	if err != nil {
		return FilterOptions{}, fmt.Errorf("scan employees: %w", err)
	}

	return FilterOptions{
		Statuses:       distinct(all, func(e model.Employee) *string { return &e.Status }),
		Locations:      distinct(all, func(e model.Employee) *string { return e.Location }),
		Companies:      distinct(all, func(e model.Employee) *string { return e.Company }),
		Departments:    distinct(all, func(e model.Employee) *string { return e.Department }),
		Positions:      distinct(all, func(e model.Employee) *string { return e.Position }),
		VisibleColumns: s.columns.Configured(orgID),
	}, nil
}

// ExportAll returns every record of the org, unfiltered, in store order.
func (s *Service) ExportAll(ctx context.Context, orgID string) ([]model.Employee, error) {
	return s.repo.AllByOrg(ctx, orgID)
}

func distinct(es []model.Employee, get func(model.Employee) *string) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, e := range es {
		v := get(e)
		if v == nil || *v == "" {
			continue
		}
		if _, ok := seen[*v]; ok {
			continue
		}
		seen[*v] = struct{}{}
		out = append(out, *v)
	}
	sort.Strings(out)
	return out
}
