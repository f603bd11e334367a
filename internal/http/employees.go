package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"github.com/sleekhr/employee-directory/internal/http/middleware"
	"github.com/sleekhr/employee-directory/internal/metrics"
	"github.com/sleekhr/employee-directory/internal/model"
	"github.com/sleekhr/employee-directory/internal/service/employee"
)

// splitMultiValue turns a comma-separated query value into a trimmed list.
// Empty segments are discarded; an empty input means no constraint.
func splitMultiValue(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func intQuery(c echo.Context, name string, def int) int {
	v := c.QueryParam(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func boolQuery(c echo.Context, name string) bool {
	v, err := strconv.ParseBool(c.QueryParam(name))
	return err == nil && v
}

func listEmployeesHandler(svc *employee.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		org, ok := middleware.OrgFromCtx(c)
		if !ok {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "X-Org-Id header is required"})
		}

		page := intQuery(c, "page", 1)
		pageSize := intQuery(c, "page_size", 50)

		filters := model.Filters{
			Statuses:          splitMultiValue(c.QueryParam("statuses")),
			Locations:         splitMultiValue(c.QueryParam("locations")),
			Companies:         splitMultiValue(c.QueryParam("companies")),
			Departments:       splitMultiValue(c.QueryParam("departments")),
			Positions:         splitMultiValue(c.QueryParam("positions")),
			Search:            strings.TrimSpace(c.QueryParam("search")),
			IncludeTerminated: boolQuery(c, "include_terminated"),
		}

		res, err := svc.Search(c.Request().Context(), org, page, pageSize, filters)
		if err != nil {
			c.Logger().Errorf("employee search failed: %v", err)

			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "query failed"})
		}
		return c.JSON(http.StatusOK, res)
	}
}

func createEmployeeHandler(svc *employee.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		org, ok := middleware.OrgFromCtx(c)
		if !ok {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "X-Org-Id header is required"})
		}

		var in model.EmployeeInput
		if err := c.Bind(&in); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad request"})
		}

		out, err := svc.Create(c.Request().Context(), org, in)
		if err != nil {
			if errors.Is(err, employee.ErrValidation) {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": employee.ErrValidation.Error()})
			}

			log.Errorf("create employee failed: %v", err)

			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
		}

		metrics.EmployeesCreatedTotal.Inc()

		return c.JSON(http.StatusCreated, out)
	}
}
