package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sleekhr/employee-directory/internal/http/middleware"
	"github.com/sleekhr/employee-directory/internal/service/employee"
)

func filterOptionsHandler(svc *employee.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		org, ok := middleware.OrgFromCtx(c)
		if !ok {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "X-Org-Id header is required"})
		}

		opts, err := svc.FilterOptions(c.Request().Context(), org)
		if err != nil {
			c.Logger().Errorf("filter options failed: %v", err)

			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "query failed"})
		}
		return c.JSON(http.StatusOK, opts)
	}
}
