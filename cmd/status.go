package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ronharel02/hilan-attendance/internal/attendance"
	"github.com/ronharel02/hilan-attendance/internal/config"
	"github.com/ronharel02/hilan-attendance/internal/hilan"
	"github.com/ronharel02/hilan-attendance/internal/report"
)

var (
	statusMonth string
	statusYear  int
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "View attendance status for a pay period",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().StringVarP(&statusMonth, "month", "m", "", "Month (1-12 or name). Default: current pay period")
	statusCmd.Flags().IntVarP(&statusYear, "year", "y", 0, "Year. Default: current")
}

func runStatus(cmd *cobra.Command, args []string) error {
	now := time.Now()
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	pattern, err := cfg.WorkPattern()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	period, err := resolvePeriod(cfg, statusMonth, statusYear, now)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	client, err := hilan.Login(ctx, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	result, existing, err := attendance.Reconciled(ctx, client, pattern, period)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	report.WriteStatus(os.Stdout, period, pattern, existing, result)
	return nil
}
