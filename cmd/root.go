package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "hilan",
	Short: "Hilan attendance auto-fill - fills attendance from a weekly pattern",
	Long: `hilan automates filling periodic attendance records on the Hilan portal.

Target days are generated from a weekly work pattern, reconciled against
what is already reported, and only the missing ones are filled. A record
that already exists is never overwritten.

Config file: ~/.config/hilan-attendance.json`,
}

// Execute is the entry point called from main. All subcommands run
// under an interrupt-aware context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(fillCmd)
}
