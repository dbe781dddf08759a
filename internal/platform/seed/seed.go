package seed

import (
	"log/slog"
	"time"

	"fsadmin/internal/domain/auth"
	"fsadmin/internal/domain/billing"
	"fsadmin/internal/domain/expense"
	"fsadmin/internal/domain/hr"
	"fsadmin/internal/domain/payroll"
	"fsadmin/internal/platform/config"
)

type Services struct {
	Users     *auth.Service
	Employees *hr.Service
	Payroll   *payroll.Service
	Billing   *billing.Service
	Expenses  *expense.Service
}

// Run provisions the bootstrap admin account and, outside production,
// a sample data set so the dashboard is explorable on first start.
func Run(cfg config.Config, services Services, logger *slog.Logger) error {
	adminPassword := cfg.SeedAdminPassword
	if adminPassword == "" {
		adminPassword = "changeme"
		logger.Warn("SEED_ADMIN_PASSWORD not set, using default bootstrap password")
	}

	if _, err := services.Users.Register("Administrator", cfg.SeedAdminEmail, adminPassword, auth.RoleSuperAdmin); err != nil {
		return err
	}
	logger.Info("seeded bootstrap admin", "email", cfg.SeedAdminEmail)

	if !cfg.SeedSampleData {
		return nil
	}
	return sampleData(services, logger)
}

func sampleData(services Services, logger *slog.Logger) error {
	staffAccounts := []struct {
		name, email, role string
	}{
		{"Ops Admin", "ops@example.com", auth.RoleAdmin},
		{"Site Manager", "manager@example.com", auth.RoleManager},
		{"Shift Supervisor", "supervisor@example.com", auth.RoleSupervisor},
		{"Staff Member", "staff@example.com", auth.RoleEmployee},
	}
	for _, account := range staffAccounts {
		if _, err := services.Users.Register(account.name, account.email, "changeme", account.role); err != nil {
			return err
		}
	}

	employees := []hr.Employee{
		{Name: "Ravi Kumar", Designation: "Housekeeping Supervisor", BaseSalary: 85000, UAN: "100200300400", ESICNumber: "3100456789", Status: hr.StatusActive, JoinedAt: time.Date(2022, 4, 1, 0, 0, 0, 0, time.UTC)},
		{Name: "Meera Iyer", Designation: "Facility Executive", BaseSalary: 62000, UAN: "100200300401", ESICNumber: "3100456790", Status: hr.StatusActive, JoinedAt: time.Date(2023, 1, 16, 0, 0, 0, 0, time.UTC)},
		{Name: "Arun Das", Designation: "Security Guard", BaseSalary: 28000, UAN: "100200300402", ESICNumber: "3100456791", Status: hr.StatusActive, JoinedAt: time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC)},
	}
	for _, employee := range employees {
		created := services.Employees.Create(employee)
		if _, err := services.Payroll.AutoCalculate(created.ID); err != nil {
			return err
		}
	}

	invoice, warnings := services.Billing.CreateInvoice(
		"Sunrise Tech Park",
		[]billing.LineItem{
			{Description: "Housekeeping services", Quantity: 1, Rate: 30000},
			{Description: "Consumables", Quantity: 10, Rate: 1500},
		},
		0,
		time.Now().UTC(),
		time.Now().UTC().AddDate(0, 0, 30),
	)
	if len(warnings) > 0 {
		logger.Warn("sample invoice generated warnings", "warnings", warnings)
	}
	if _, err := services.Billing.Send(invoice.ID); err != nil {
		return err
	}

	services.Expenses.Create(expense.Input{
		Category:      "supplies",
		Vendor:        "CleanCo Traders",
		BaseAmount:    12500,
		Date:          time.Now().UTC(),
		PaymentMethod: "bank-transfer",
	})
	services.Expenses.Create(expense.Input{
		Category:      "fuel",
		Vendor:        "City Fuels",
		BaseAmount:    4200,
		Date:          time.Now().UTC(),
		PaymentMethod: "cash",
	})

	logger.Info("seeded sample data",
		"employees", len(employees),
		"invoices", 1,
		"expenses", 2,
	)
	return nil
}
