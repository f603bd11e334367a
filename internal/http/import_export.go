package http

import (
	"bytes"
	"encoding/csv"
	"io"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	"github.com/sleekhr/employee-directory/internal/http/middleware"
	"github.com/sleekhr/employee-directory/internal/metrics"
	"github.com/sleekhr/employee-directory/internal/model"
	"github.com/sleekhr/employee-directory/internal/service/employee"
)

// exportColumns is the fixed export header order.
var exportColumns = []string{"id", "first_name", "last_name", "department", "position", "location", "status", "company"}

func importEmployeesHandler(svc *employee.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		org, ok := middleware.OrgFromCtx(c)
		if !ok {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "X-Org-Id header is required"})
		}

		fh, err := c.FormFile("file")
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "file is required"})
		}
		f, err := fh.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "file is required"})
		}
		defer func() { _ = f.Close() }()

		data, err := io.ReadAll(f)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "file is required"})
		}
		if !utf8.Valid(data) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "CSV file must be UTF-8 encoded"})
		}

		records := parseEmployeeCSV(data)

		imported, err := svc.ImportBulk(c.Request().Context(), org, records)
		if err != nil {
			c.Logger().Errorf("employee import failed: %v", err)

			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
		}

		metrics.EmployeesImportedTotal.Add(float64(imported))

		return c.JSON(http.StatusCreated, map[string]int{"imported": imported})
	}
}

// parseEmployeeCSV reads a header row (columns in any order, unknown columns
// ignored) and converts the remaining rows into candidate records. Rows that
// fail to parse are skipped; per-row validation happens in the service.
func parseEmployeeCSV(data []byte) []model.EmployeeInput {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}

	field := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var records []model.EmployeeInput
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		records = append(records, model.EmployeeInput{
			FirstName:  field(row, "first_name"),
			LastName:   field(row, "last_name"),
			Department: field(row, "department"),
			Position:   field(row, "position"),
			Location:   field(row, "location"),
			Status:     field(row, "status"),
			Company:    field(row, "company"),
		})
	}
	return records
}

func exportEmployeesHandler(svc *employee.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		org, ok := middleware.OrgFromCtx(c)
		if !ok {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "X-Org-Id header is required"})
		}

		all, err := svc.ExportAll(c.Request().Context(), org)
		if err != nil {
			c.Logger().Errorf("employee export failed: %v", err)

			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "query failed"})
		}

		var buf bytes.Buffer
		w := csv.NewWriter(&buf)
		_ = w.Write(exportColumns)
		for _, e := range all {
			_ = w.Write([]string{
				strconv.FormatInt(e.ID, 10),
				e.FirstName,
				e.LastName,
				deref(e.Department),
				deref(e.Position),
				deref(e.Location),
				e.Status,
				deref(e.Company),
			})
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "encode failed"})
		}

		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="employees.csv"`)
		return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
