package main

import (
	"fmt"
	"os"

	"github.com/hanmin/dcasim/internal/calculation"
	"github.com/hanmin/dcasim/internal/config"
	"github.com/hanmin/dcasim/internal/logging"
	"github.com/hanmin/dcasim/internal/output"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "dcasim",
	Short: "Monthly compounding simulator for savings and investment plans",
	Long: "dcasim projects a monthly contribution plan year by year: market growth, " +
		"dividends, taxes, fees, and currency conversion, compared against an " +
		"interest-bearing deposit plan.",
}

var simulateCmd = &cobra.Command{
	Use:   "simulate [input-file]",
	Short: "Run a plan simulation from a YAML input file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		format, _ := cmd.Flags().GetString("format")
		outputFile, _ := cmd.Flags().GetString("output")

		logger, err := logging.New(debug)
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()

		parser := config.NewInputParser()
		inputs, err := parser.LoadFromFile(args[0])
		if err != nil {
			return err
		}

		engine := calculation.NewEngine()
		if debug {
			engine.SetLogger(logger)
		}
		result, err := engine.RunPlan(inputs)
		if err != nil {
			return err
		}

		formatter, err := output.NewFormatter(format)
		if err != nil {
			return err
		}
		rendered, err := formatter.Format(result)
		if err != nil {
			return fmt.Errorf("failed to format result: %w", err)
		}

		if outputFile != "" {
			if err := os.WriteFile(outputFile, []byte(rendered), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outputFile, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", outputFile)
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "dcasim %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	simulateCmd.Flags().String("format", "table", "Output format: table, csv, or json")
	simulateCmd.Flags().String("output", "", "Write the report to a file instead of stdout")
	simulateCmd.Flags().Bool("debug", false, "Enable debug logging")
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
