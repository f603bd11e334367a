package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	RateLimitedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "empdir_rate_limited_total",
			Help: "Requests rejected by the rate limiter, by logical endpoint",
		},
		[]string{"endpoint"},
	)

	EmployeesCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "empdir_employees_created_total",
			Help: "Employees created through the single-create endpoint",
		},
	)

	EmployeesImportedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "empdir_employees_imported_total",
			Help: "Employees accepted through CSV import",
		},
	)
)

var registerOnce sync.Once

// MustRegister is idempotent so tests can build several servers against the
// default registerer.
func MustRegister(r prometheus.Registerer) {
	registerOnce.Do(func() {
		r.MustRegister(
			RateLimitedTotal,
			EmployeesCreatedTotal,
			EmployeesImportedTotal,
		)
	})
}
