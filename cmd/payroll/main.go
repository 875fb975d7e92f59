// Command payroll is the batch orchestrator around the calculation engine:
// it loads rule tables and employee snapshots, runs the statutory
// calculators, and persists the resulting benefit/discount records.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/folhabr/payroll-calculator/internal/calculation"
	"github.com/folhabr/payroll-calculator/internal/config"
	"github.com/folhabr/payroll-calculator/internal/store/sqlite"
	"github.com/folhabr/payroll-calculator/pkg/money"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "payroll",
		Short: "Payroll and labor-cost calculation engine",
		Long: `Computes statutory payroll figures (INSS, FGTS, IRRF), vacation pay,
thirteenth salary proration and fully-loaded labor cost from configurable
regulatory tables.`,
		SilenceUsage: true,
	}

	root.AddCommand(newRunCmd())
	root.AddCommand(newVacationCmd())
	root.AddCommand(newThirteenthCmd())
	root.AddCommand(newCostCmd())
	root.AddCommand(newExampleConfigCmd())
	return root
}

// loadRules loads a rules file, falling back to the built-in 2024 tables.
func loadRules(rulesFile string) (*config.PayrollRules, error) {
	if rulesFile == "" {
		return config.DefaultRules2024(), nil
	}
	return config.NewRulesParser().LoadFromFile(rulesFile)
}

func newRunCmd() *cobra.Command {
	var (
		rulesFile     string
		employeesFile string
		reference     string
		dbPath        string
		dryRun        bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a batch payroll calculation for a reference month",
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := loadRules(rulesFile)
			if err != nil {
				return err
			}

			parser := config.NewRulesParser()
			employees, err := parser.LoadEmployees(employeesFile)
			if err != nil {
				return err
			}

			referenceDate, err := time.Parse("2006-01", reference)
			if err != nil {
				return fmt.Errorf("invalid reference month %q, want YYYY-MM: %w", reference, err)
			}

			engine := calculation.NewPayrollEngine(rules)
			records := engine.RunBatch(employees, referenceDate)

			for _, r := range records {
				fmt.Printf("%-12s %-6s %-10s %12s  %s\n",
					r.EmployeeID, r.Type, r.Category, r.Value, r.ReferenceDate.Format("2006-01"))
			}

			if dryRun {
				fmt.Printf("dry run: %d records computed, nothing persisted\n", len(records))
				return nil
			}

			store, err := sqlite.New(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.SaveBenefitRecords(records); err != nil {
				return err
			}
			fmt.Printf("%d records persisted to %s\n", len(records), dbPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&rulesFile, "rules", "", "payroll rules YAML (default: built-in 2024 tables)")
	cmd.Flags().StringVar(&employeesFile, "employees", "employees.yaml", "employee snapshots YAML")
	cmd.Flags().StringVar(&reference, "reference", time.Now().Format("2006-01"), "reference month (YYYY-MM)")
	cmd.Flags().StringVar(&dbPath, "db", "payroll.db", "SQLite database path")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "compute without persisting")
	return cmd
}

func newVacationCmd() *cobra.Command {
	var (
		salary    string
		days      int
		cashOut   int
		admission string
	)

	cmd := &cobra.Command{
		Use:   "vacation",
		Short: "Compute vacation pay and, given an admission date, the acquisition window",
		RunE: func(cmd *cobra.Command, args []string) error {
			baseSalary, err := money.NewFromString(salary)
			if err != nil {
				return fmt.Errorf("invalid salary %q: %w", salary, err)
			}

			calc := calculation.NewVacationPayCalculator()
			result := calc.CalculateValue(baseSalary, days, cashOut)

			fmt.Printf("vacation value:       %12s\n", result.VacationValue)
			fmt.Printf("cash-out value:       %12s\n", result.CashOutValue)
			fmt.Printf("constitutional bonus: %12s\n", result.ConstitutionalBonus)
			fmt.Printf("total:                %12s\n", result.Total)

			if admission != "" {
				admissionDate, err := time.Parse("2006-01-02", admission)
				if err != nil {
					return fmt.Errorf("invalid admission date %q: %w", admission, err)
				}
				period := calc.CalculateAcquisitionPeriod(admissionDate, time.Now())
				fmt.Printf("acquisition period:   %s to %s\n",
					period.Start.Format("2006-01-02"), period.End.Format("2006-01-02"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&salary, "salary", "", "monthly base salary")
	cmd.Flags().IntVar(&days, "days", 30, "vacation days taken (1-30)")
	cmd.Flags().IntVar(&cashOut, "cash-out", 0, "days sold back (0-10)")
	cmd.Flags().StringVar(&admission, "admission", "", "admission date (YYYY-MM-DD)")
	cmd.MarkFlagRequired("salary")
	return cmd
}

func newThirteenthCmd() *cobra.Command {
	var (
		salary      string
		admission   string
		termination string
		year        int
	)

	cmd := &cobra.Command{
		Use:   "thirteenth",
		Short: "Compute the thirteenth salary prorated by months worked",
		RunE: func(cmd *cobra.Command, args []string) error {
			baseSalary, err := money.NewFromString(salary)
			if err != nil {
				return fmt.Errorf("invalid salary %q: %w", salary, err)
			}
			admissionDate, err := time.Parse("2006-01-02", admission)
			if err != nil {
				return fmt.Errorf("invalid admission date %q: %w", admission, err)
			}
			var terminationDate *time.Time
			if termination != "" {
				t, err := time.Parse("2006-01-02", termination)
				if err != nil {
					return fmt.Errorf("invalid termination date %q: %w", termination, err)
				}
				terminationDate = &t
			}

			calc := calculation.NewThirteenthSalaryCalculator()
			months := calc.CalculateMonthsWorked(admissionDate, year, terminationDate)
			gross := calc.CalculateGrossValue(baseSalary, months)

			fmt.Printf("months worked in %d: %d\n", year, months)
			fmt.Printf("gross thirteenth:     %12s\n", gross)
			return nil
		},
	}

	cmd.Flags().StringVar(&salary, "salary", "", "monthly base salary")
	cmd.Flags().StringVar(&admission, "admission", "", "admission date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&termination, "termination", "", "termination date (YYYY-MM-DD), if any")
	cmd.Flags().IntVar(&year, "year", time.Now().Year(), "reference year")
	cmd.MarkFlagRequired("salary")
	cmd.MarkFlagRequired("admission")
	return cmd
}

func newCostCmd() *cobra.Command {
	var (
		rulesFile string
		salary    string
	)

	cmd := &cobra.Command{
		Use:   "cost",
		Short: "Compute the fully-loaded monthly labor cost of a salary",
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := loadRules(rulesFile)
			if err != nil {
				return err
			}
			baseSalary, err := money.NewFromString(salary)
			if err != nil {
				return fmt.Errorf("invalid salary %q: %w", salary, err)
			}

			breakdown := calculation.NewLaborCostEstimator(rules).CalculateMonthlyCost(baseSalary)

			fmt.Printf("base salary:          %12s\n", breakdown.BaseSalary)
			fmt.Printf("employer contribution:%12s\n", breakdown.EmployerContribution)
			fmt.Printf("severance pool:       %12s\n", breakdown.SeverancePoolContribution)
			fmt.Printf("vacation provision:   %12s\n", breakdown.VacationProvision)
			fmt.Printf("thirteenth provision: %12s\n", breakdown.ThirteenthSalaryProvision)
			fmt.Printf("other charges:        %12s\n", breakdown.OtherCharges)
			fmt.Printf("total monthly:        %12s\n", breakdown.TotalMonthly)
			fmt.Printf("total annual:         %12s\n", breakdown.TotalAnnual)
			fmt.Printf("cost per hour:        %12s\n", breakdown.CostPerHour)
			return nil
		},
	}

	cmd.Flags().StringVar(&rulesFile, "rules", "", "payroll rules YAML (default: built-in 2024 tables)")
	cmd.Flags().StringVar(&salary, "salary", "", "monthly base salary")
	cmd.MarkFlagRequired("salary")
	return cmd
}

func newExampleConfigCmd() *cobra.Command {
	var rules bool

	cmd := &cobra.Command{
		Use:   "example-config",
		Short: "Print an example employees file (or, with --rules, the built-in rule tables)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var doc any
			if rules {
				doc = config.DefaultRules2024()
			} else {
				doc = config.NewRulesParser().CreateExampleEmployees()
			}
			out, err := yaml.Marshal(doc)
			if err != nil {
				return fmt.Errorf("failed to marshal example: %w", err)
			}
			fmt.Print(string(out))
			return nil
		},
	}

	cmd.Flags().BoolVar(&rules, "rules", false, "print the built-in rule tables instead")
	return cmd
}
