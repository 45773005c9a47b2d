package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/warp/deposit-engine/api"
	"github.com/warp/deposit-engine/config"
	"github.com/warp/deposit-engine/deposit"
	"github.com/warp/deposit-engine/factory"
	"github.com/warp/deposit-engine/generic"
)

type planOptions struct {
	amount     string
	openDate   string
	closeDate  string
	rate       string
	planType   string
	configPath string
	output     string
}

func newPlanCmd() *cobra.Command {
	opts := &planOptions{}

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Compute a deposit payment schedule",
		Long: `Compute the payment schedule of a deposit and print one line per month end.

The closing date must be after the opening date. Plan type "save" is
recognized but not supported yet and fails with exit code 3.

Examples:
  deposit plan --amount 1000 --open-date 2024-01-15 --close-date 2024-04-15 --rate 12
  deposit plan --amount 50000 --open-date 2024-11-10 --close-date 2025-03-10 -r 9.5 -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.amount, "amount", "", "current (principal) amount (required)")
	cmd.Flags().StringVar(&opts.openDate, "open-date", "", "opening date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&opts.closeDate, "close-date", "", "closing (prolongation) date, YYYY-MM-DD (required)")
	cmd.Flags().StringVarP(&opts.rate, "rate", "r", "", "annual interest rate in percent (required)")
	cmd.Flags().StringVarP(&opts.planType, "type", "t", "", "plan type: fixed or save (default from config, else fixed)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "path to config file (YAML or JSON)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "text", "output format: text or json")
	cmd.MarkFlagRequired("amount")
	cmd.MarkFlagRequired("open-date")
	cmd.MarkFlagRequired("close-date")
	cmd.MarkFlagRequired("rate")

	return cmd
}

func runPlan(out io.Writer, opts *planOptions) error {
	if opts.output != "text" && opts.output != "json" {
		return fmt.Errorf("%w: --output must be 'text' or 'json'", errUsage)
	}

	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.LoadFromFile(opts.configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	principal, err := generic.ParseDecimal(opts.amount)
	if err != nil {
		return fmt.Errorf("--amount: %w", err)
	}
	rate, err := generic.ParseDecimal(opts.rate)
	if err != nil {
		return fmt.Errorf("--rate: %w", err)
	}

	f := factory.NewPlanFactory(cfg.DefaultPlanType())
	planType, params, err := f.Resolve(factory.PlanJSON{
		Type:      opts.planType,
		Principal: decimal.NewNullDecimal(principal),
		OpenDate:  opts.openDate,
		CloseDate: opts.closeDate,
		Rate:      decimal.NewNullDecimal(rate),
	})
	if err != nil {
		return err
	}

	plan, err := deposit.NewPlan(planType, params)
	if err != nil {
		return err
	}

	if opts.output == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(api.NewScheduleDTO(ulid.Make().String(), plan, params))
	}
	printPlan(out, plan, params)
	return nil
}

func printPlan(out io.Writer, plan deposit.Plan, params deposit.Params) {
	fmt.Fprintln(out, "Your input parameters are:")
	fmt.Fprintf(out, "Current amount is: %s\n", params.Principal)
	fmt.Fprintf(out, "Open date is: %s\n", params.Open)
	fmt.Fprintf(out, "Prolongation date is: %s\n", params.Close)
	fmt.Fprintf(out, "Rate is: %s\n", params.Rate)
	fmt.Fprintf(out, "Plan type is: %s\n", plan.Type())

	payments := plan.Payments()
	if len(payments) == 0 {
		fmt.Fprintln(out, "No month end falls inside the term, no interest is capitalized")
		return
	}
	for _, p := range payments {
		fmt.Fprintf(out, "For %s amount is %s\n", p.Month.Name(), generic.FormatMoney(p.Total))
	}
}
