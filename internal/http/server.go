package http

import (
	"context"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	echoMid "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sleekhr/employee-directory/internal/config"
	"github.com/sleekhr/employee-directory/internal/http/middleware"
	"github.com/sleekhr/employee-directory/internal/metrics"
	"github.com/sleekhr/employee-directory/internal/ratelimit"
	"github.com/sleekhr/employee-directory/internal/repository"
	"github.com/sleekhr/employee-directory/internal/service/employee"
)

type Server struct{ e *echo.Echo }

func NewServer(cfg config.Config, repo repository.EmployeeRepository, limiter ratelimit.Limiter) *Server {
	// service
	svc := employee.NewService(repo, employee.NewColumnPolicy(cfg.Orgs.VisibleColumns))

	// echo
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMid.Recover(), echoMid.Logger())

	metrics.MustRegister(prometheus.DefaultRegisterer)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// health
	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	// rate limit per logical endpoint, keyed ip:org:endpoint
	rl := func(endpoint string) echo.MiddlewareFunc {
		return middleware.RateLimitMiddleware(limiter, endpoint)
	}

	// routes
	g := e.Group("/employees", middleware.OrgMiddleware())
	g.GET("", listEmployeesHandler(svc), rl("employees"))
	g.POST("", createEmployeeHandler(svc), rl("employees:create"))
	g.GET("/filters", filterOptionsHandler(svc), rl("filters"))
	g.POST("/import", importEmployeesHandler(svc), rl("employees:import"))
	g.GET("/export", exportEmployeesHandler(svc), rl("employees:export"))

	return &Server{e: e}
}

func (s *Server) Start(addr string) error {
	log.Printf("http: listening on %s", addr)
	return s.e.Start(addr)
}
func (s *Server) Shutdown(ctx context.Context) error { return s.e.Shutdown(ctx) }
