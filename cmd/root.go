package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "webdev100",
	Short: "100 days of HTML, CSS and JavaScript in your terminal",
	Long: `webdev100 walks through a 100-day web development curriculum: one lesson
per day with classwork and homework exercises. Progress lasts for the session.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the command tree with ctx, which is cancelled on
// interrupt.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default $XDG_CONFIG_HOME/webdev100/config.yaml)")
	rootCmd.PersistentFlags().String("content-dir", "", "Load lessons from this directory instead of the built-in ones")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file (the TUI is silent otherwise)")
	rootCmd.Flags().Int("day", 0, "Open this day directly")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(hintCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}
