package main

import (
	"os"

	"github.com/spf13/cobra"
)

//go:generate swag init -g main.go

// @title Housing Trends API
// @version 1.0
// @description Chart data, summaries and exports over Zillow housing time series.
// @BasePath /api
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	serve := newServeCmd()

	rootCmd := &cobra.Command{
		Use:   "housing-trends",
		Short: "Serve Zillow housing time series as chart data",
		Long: `housing-trends pivots Zillow region-by-month CSV and XLSX files into
period-indexed tables and serves them to a line-chart dashboard.

Without a subcommand it starts the HTTP server.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         serve.RunE,
	}
	rootCmd.Flags().AddFlagSet(serve.Flags())

	rootCmd.AddCommand(serve, newTransformCmd(), newRegionsCmd())
	return rootCmd
}
