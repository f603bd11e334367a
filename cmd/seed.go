package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/sleekhr/employee-directory/internal/config"
	"github.com/sleekhr/employee-directory/internal/db"
	"github.com/sleekhr/employee-directory/internal/model"
	"github.com/sleekhr/employee-directory/internal/repository"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with demo employees",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		sqlDB, err := db.NewMySQLConnection(cfg.MySQL.DSN, db.MySQLOpts{
			MaxOpenConns:    cfg.MySQL.MaxOpenConns,
			MaxIdleConns:    cfg.MySQL.MaxIdleConns,
			ConnMaxLifetime: cfg.MySQL.ConnMaxLifetime,
			ConnMaxIdleTime: cfg.MySQL.ConnMaxIdleTime,
			PingTimeout:     cfg.MySQL.PingTimeout,
		})
		if err != nil {
			return fmt.Errorf("mysql connect: %w", err)
		}
		defer sqlDB.Close()

		// idempotent: only seed an empty table
		var existing int
		if err := sqlDB.Get(&existing, "SELECT COUNT(*) FROM employees"); err != nil {
			return fmt.Errorf("count employees: %w", err)
		}
		if existing > 0 {
			log.Println(">> Database already contains data. Skipping seed.")
			return nil
		}

		repo := repository.NewEmployeeRepository(sqlDB)
		n, err := repo.BulkInsert(context.Background(), demoEmployees())
		if err != nil {
			return fmt.Errorf("seed employees: %w", err)
		}

		log.Printf(">> Seeded %d employees", n)
		return nil
	},
}

func demoEmployees() []model.Employee {
	return []model.Employee{
		{OrgID: "org-1", FirstName: "Amelia", LastName: "Last", Department: strptr("asd"), Position: strptr("Assistant Manager"), Location: strptr("Singapore"), Status: "Active", Company: strptr("Sleek")},
		{OrgID: "org-1", FirstName: "Ana", LastName: "Test", Department: strptr("No department"), Position: strptr("No position"), Location: strptr("No location"), Status: "Active", Company: strptr("Sleek")},
		{OrgID: "org-1", FirstName: "Arlani", LastName: "Sosaia", Department: strptr("No department"), Position: strptr("No position"), Location: strptr("Somewhere"), Status: "Not started", Company: strptr("Sleek")},
		{OrgID: "org-1", FirstName: "Terminated", LastName: "Employee", Department: strptr("No department"), Position: strptr("No position"), Location: strptr("Nowhere"), Status: "Terminated", Company: strptr("Sleek")},
		{OrgID: "org-2", FirstName: "OtherOrg", LastName: "User", Department: strptr("Other Department"), Position: strptr("Other Position"), Location: strptr("Other City"), Status: "Active", Company: strptr("Other Co")},
	}
}

func strptr(s string) *string { return &s }
