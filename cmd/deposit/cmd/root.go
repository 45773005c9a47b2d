package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/warp/deposit-engine/generic"
)

// Exit codes returned by the deposit binary.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitUsage       = 2
	ExitUnsupported = 3
)

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "deposit",
		Short: "Interest accrual schedules for bank deposits",
		Long: `Deposit computes the month-by-month interest schedule of a bank deposit.

A "fixed" deposit capitalizes its interest at every month end: the
interest is added to the balance and the next month earns on the
enlarged balance. Amounts are kept to three decimal places.

Example:
  deposit plan --amount 1000 --open-date 2024-01-15 --close-date 2024-04-15 --rate 12`,
		SilenceUsage: true,
	}

	root.AddCommand(newPlanCmd())
	root.AddCommand(newConfigCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs the command tree and returns the process exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		return ExitCode(err)
	}
	return ExitOK
}

// ExitCode classifies err for the shell.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case generic.IsUnsupported(err):
		return ExitUnsupported
	case generic.IsClientError(err), errors.Is(err, errUsage):
		return ExitUsage
	default:
		return ExitFailure
	}
}

var errUsage = errors.New("usage error")
