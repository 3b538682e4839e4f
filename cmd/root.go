// Package cmd contains all CLI commands for configdrift
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/k0ns0l/configdrift/internal/config"
	"github.com/k0ns0l/configdrift/internal/document"
	"github.com/k0ns0l/configdrift/internal/drift"
	"github.com/k0ns0l/configdrift/internal/errors"
	"github.com/k0ns0l/configdrift/internal/export"
	"github.com/k0ns0l/configdrift/internal/logging"
	"github.com/k0ns0l/configdrift/internal/version"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  *logging.Logger
)

// errDriftDetected signals a successful run that found drift. It maps to
// exit code 1 and is never printed as an error.
var errDriftDetected = fmt.Errorf("configuration drift detected")

// compareOptions holds the flag values of one comparison run
type compareOptions struct {
	baselinePath string
	targetPath   string
	csvPath      string
	jsonPath     string
	quiet        bool
}

var compareOpts compareOptions

// rootCmd represents the base command. configdrift is a single-shot batch
// tool, so the comparison runs directly on the root command instead of a
// subcommand.
var rootCmd = &cobra.Command{
	Use:   "configdrift --baseline <path> --target <path>",
	Short: "Detect configuration drift between two JSON documents",
	Long: `configdrift compares a baseline JSON configuration against a target and
reports every discrepancy: keys missing from the target, keys new in the
target, and values that were modified.

The report can be rendered to the console and exported as CSV or JSON.
The exit code summarizes the result: 0 when the configurations match,
1 when drift was detected, 2 on any execution error.

Examples:
  configdrift --baseline prod.json --target staging.json
  configdrift --baseline prod.json --target staging.json --csv drift.csv
  configdrift --baseline prod.json --target staging.json --json drift.json --quiet`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		versionFlag, err := cmd.Flags().GetBool("version")
		if err != nil {
			return fmt.Errorf("failed to get version flag: %w", err)
		}
		if versionFlag {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetVersionString())
			return nil
		}

		if compareOpts.baselinePath == "" || compareOpts.targetPath == "" {
			return errors.NewError(errors.ErrorTypeInput, "MISSING_ARGUMENT",
				"both --baseline and --target are required").
				WithGuidance("Run 'configdrift --help' for usage")
		}

		return runCompare(cmd, compareOpts)
	},
}

// runCompare loads both documents, runs the comparison, and dispatches the
// report to the console and any requested export files.
func runCompare(cmd *cobra.Command, opts compareOptions) error {
	log := GetLogger().WithComponent("compare")

	baseline, err := document.Load(opts.baselinePath)
	if err != nil {
		return err
	}
	log.Debug("loaded baseline", "path", opts.baselinePath)

	target, err := document.Load(opts.targetPath)
	if err != nil {
		return err
	}
	log.Debug("loaded target", "path", opts.targetPath)

	report := drift.Compare(baseline, target)
	summary := report.Summarize()
	log.Debug("comparison complete",
		"records", summary.Total,
		"missing", summary.Missing,
		"new", summary.New,
		"modified", summary.Modified)

	quiet := opts.quiet || (cfg != nil && cfg.Output.Quiet)
	if !quiet {
		if err := export.WriteConsole(report, cmd.OutOrStdout()); err != nil {
			return errors.WrapError(err, errors.ErrorTypeOutput, "CONSOLE_WRITE",
				"failed to render report")
		}
	}

	if opts.csvPath != "" {
		if err := export.WriteFile(report, export.FormatCSV, opts.csvPath); err != nil {
			return err
		}
		log.Debug("wrote CSV report", "path", opts.csvPath)
	}

	if opts.jsonPath != "" {
		if err := export.WriteFile(report, export.FormatJSON, opts.jsonPath); err != nil {
			return err
		}
		log.Debug("wrote JSON report", "path", opts.jsonPath)
	}

	if report.HasDrift() {
		return errDriftDetected
	}
	return nil
}

// Execute runs the root command and returns the process exit code.
// This is called by main.main().
func Execute() int {
	err := rootCmd.Execute()
	if err != nil && err != errDriftDetected {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if guidance := errors.GetGuidance(err); guidance != "" {
			fmt.Fprintf(os.Stderr, "Guidance: %s\n", guidance)
		}
		GetLogger().LogError(context.Background(), err, "run failed")
	}
	return exitCodeFor(err)
}

// exitCodeFor maps the run outcome to the process exit code: 0 clean,
// 1 drift detected, 2 any execution error.
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return errors.ExitCodeClean
	case err == errDriftDetected:
		return errors.ExitCodeDrift
	default:
		return errors.ExitCode(err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .configdrift.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	rootCmd.Flags().StringVar(&compareOpts.baselinePath, "baseline", "", "path to the baseline JSON configuration")
	rootCmd.Flags().StringVar(&compareOpts.targetPath, "target", "", "path to the target JSON configuration")
	rootCmd.Flags().StringVar(&compareOpts.csvPath, "csv", "", "write the drift report to a CSV file")
	rootCmd.Flags().StringVar(&compareOpts.jsonPath, "json", "", "write the drift report to a JSON file")
	rootCmd.Flags().BoolVar(&compareOpts.quiet, "quiet", false, "suppress console rendering")
	rootCmd.Flags().Bool("version", false, "show version information")
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	var err error
	cfg, err = config.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if guidance := errors.GetGuidance(err); guidance != "" {
			fmt.Fprintf(os.Stderr, "Guidance: %s\n", guidance)
		}
		os.Exit(errors.ExitCodeError)
	}

	logConfig := cfg.Logging
	if rootCmd.PersistentFlags().Changed("verbose") {
		logConfig.Level = logging.LogLevelDebug
	}

	logger = logging.NewLogger(logConfig, os.Stderr)
	logging.InitGlobalLogger(logConfig)

	if logger.IsDebugEnabled() {
		configPath := config.GetConfigFilePath(cfgFile)
		if config.ConfigExists(configPath) {
			logger.Debug("using config file", "path", configPath)
		} else {
			logger.Debug("using default configuration (no config file found)")
		}
	}
}

// GetConfig returns the loaded configuration
func GetConfig() *config.Config {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return cfg
}

// GetLogger returns the initialized logger
func GetLogger() *logging.Logger {
	if logger == nil {
		logger = logging.GetGlobalLogger()
	}
	return logger
}
