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
	fillMonth     string
	fillYear      int
	fillDryRun    bool
	fillToday     bool
	fillUpToToday bool
)

var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Fill missing attendance for a pay period",
	Long: `Fill attendance records for a pay period according to the weekly
work pattern. Days that are already filled are left alone; days whose
existing record does not match the pattern are reported as conflicts and
never touched.`,
	Args: cobra.NoArgs,
	RunE: runFill,
}

func init() {
	fillCmd.Flags().StringVarP(&fillMonth, "month", "m", "", "Month (1-12 or name). Default: current pay period")
	fillCmd.Flags().IntVarP(&fillYear, "year", "y", 0, "Year. Default: current")
	fillCmd.Flags().BoolVarP(&fillDryRun, "dry-run", "d", false, "Preview without submitting")
	fillCmd.Flags().BoolVarP(&fillToday, "today", "t", false, "Only fill today (if needed)")
	fillCmd.Flags().BoolVarP(&fillUpToToday, "up-to-today", "u", false, "Fill all days up to and including today")
}

func runFill(cmd *cobra.Command, args []string) error {
	if fillToday && fillUpToToday {
		fmt.Fprintln(os.Stderr, "choose one of --today or --up-to-today")
		os.Exit(2)
	}

	now := time.Now()
	// The root command's context; an interrupt stops the run between
	// days, while a submission already in flight is left to finish.
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
	period, err := resolvePeriod(cfg, fillMonth, fillYear, now)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	filter := attendance.AllDates()
	switch {
	case fillToday:
		filter = attendance.OnlyDate(now)
		if !period.Contains(now) {
			fmt.Fprintf(os.Stderr, "Warning: today is not in pay period %s\n", period.Label())
		}
	case fillUpToToday:
		filter = attendance.UpToDate(now)
	}

	client, err := hilan.Login(ctx, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	result, _, err := attendance.Reconciled(ctx, client, pattern, period)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	report.WriteFillPlan(os.Stdout, period, pattern, result, filter)
	fmt.Println()

	if fillDryRun {
		fmt.Println("Dry run - no changes will be made.")
	}

	planner := attendance.NewPlanner(client)
	actions := planner.Run(ctx, result, attendance.Options{DryRun: fillDryRun, Filter: filter})
	report.WriteActions(os.Stdout, actions)
	return nil
}
