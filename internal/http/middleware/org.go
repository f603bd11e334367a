package middleware

import (
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v4"
)

// HeaderOrgID carries the tenant identifier on every request.
const HeaderOrgID = "X-Org-Id"

// OrgFromCtx extracts the organization id set by OrgMiddleware.
func OrgFromCtx(c echo.Context) (string, bool) {
	v := c.Get("org_id")
	org, ok := v.(string)
	return org, ok && org != ""
}

// OrgMiddleware requires the X-Org-Id header and stores its value in the
// echo context. Every record and query downstream is scoped by it.
func OrgMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			org := strings.TrimSpace(c.Request().Header.Get(HeaderOrgID))
			if org == "" {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "X-Org-Id header is required"})
			}
			c.Set("org_id", org)
			return next(c)
		}
	}
}
