// Command server runs the relief desk web application.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string

	rootCmd := &cobra.Command{
		Use:           "server",
		Short:         "Relief desk web application",
		Long:          "Serves the relief desk pages. Without a subcommand it behaves like 'serve'.",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), envFile)
		},
	}
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Environment file loaded before reading configuration")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), envFile)
		},
	}
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(envFile)
		},
	}
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the development relief centers and exit",
		Long:  "Runs migrations, then inserts the baseline relief centers. Safe to run repeatedly.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(envFile)
		},
	}

	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
	return rootCmd
}
