package convert

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scan-io-git/nessus-export/internal/config"
	"github.com/scan-io-git/nessus-export/internal/export"
	"github.com/scan-io-git/nessus-export/internal/findings"
	"github.com/scan-io-git/nessus-export/internal/logger"
	"github.com/scan-io-git/nessus-export/internal/nessus"
)

// RunOptionsConvert holds the arguments for the convert command.
type RunOptionsConvert struct {
	InputFile     string
	CustomFieldID string
	OutputPath    string
	Format        string
	MinSeverity   int
	ConfigPath    string
}

var exampleConvertUsage = `  # Convert a Nessus report, storing plugin IDs in custom field "cf_plugin_id"
  nessus-export scan.nessus cf_plugin_id

  # Write the result to a specific file
  nessus-export scan.nessus cf_plugin_id --output /tmp/import.yml

  # Keep only High and Critical findings
  nessus-export scan.nessus cf_plugin_id --min-severity 3

  # Export the same findings as SARIF or CycloneDX
  nessus-export scan.nessus cf_plugin_id --format sarif
  nessus-export scan.nessus cf_plugin_id --format cyclonedx --output scan.cdx.json`

// NewConvertCmd creates the command converting a Nessus report into an import file.
func NewConvertCmd() *cobra.Command {
	options := &RunOptionsConvert{}

	cmd := &cobra.Command{
		Use:                   "nessus-export INPUT_FILE CUSTOM_FIELD_ID [--output/-o PATH] [--format/-f FORMAT] [--min-severity N] [--config PATH]",
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
		Args:                  cobra.ArbitraryArgs,
		Example:               exampleConvertUsage,
		Short:                 "Extract vulnerabilities from a Nessus file and output them as YAML",
		Long: `Extract vulnerabilities from a Nessus (.nessus v2) report and write them as a YAML
list ready for import into a tracking system.

Only Medium, High and Critical items are kept by default. Findings are deduplicated
by plugin ID; the first occurrence wins. The plugin ID is stored in the custom field
named by CUSTOM_FIELD_ID.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvertCommand(cmd, options, args)
		},
	}

	cmd.PersistentFlags().StringVar(&options.ConfigPath, "config", "", "Path to an optional YAML configuration file.")
	cmd.Flags().StringVarP(&options.OutputPath, "output", "o", "", "Output file path. Defaults to the input path with its extension replaced by _vulnerabilities.yml.")
	cmd.Flags().StringVarP(&options.Format, "format", "f", string(export.FormatYAML), "Output format: yaml, sarif or cyclonedx.")
	cmd.Flags().IntVar(&options.MinSeverity, "min-severity", findings.DefaultMinSeverity, "Lowest Nessus severity to export (0 info, 1 low, 2 medium, 3 high, 4 critical).")
	cmd.Flags().BoolP("help", "h", false, "Show help for the command.")

	return cmd
}

// runConvertCommand executes the conversion.
func runConvertCommand(cmd *cobra.Command, options *RunOptionsConvert, args []string) error {
	if len(args) == 0 && !hasFlags(cmd.Flags()) {
		return cmd.Help()
	}

	cfg, err := config.LoadConfig(options.ConfigPath)
	if err != nil {
		return err
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return err
	}

	logger := logger.NewLogger(cfg, "core-convert")
	applyConfigDefaults(cmd.Flags(), options, cfg)

	format, err := validateConvertArgs(options, args)
	if err != nil {
		logger.Error("invalid convert arguments", "error", err)
		return err
	}

	outputPath, err := resolveOutputPath(options, format)
	if err != nil {
		logger.Error("failed to resolve output path", "error", err)
		return err
	}

	report, err := nessus.Load(options.InputFile)
	if err != nil {
		logger.Error("failed to load Nessus report", "path", options.InputFile, "error", err)
		return err
	}

	vulnerabilities := findings.Extract(report, options.CustomFieldID,
		findings.WithMinSeverity(options.MinSeverity),
		findings.WithLogger(logger.Named("extract")),
	)
	logger.Debug("vulnerabilities extracted", "hosts", len(report.Hosts), "findings", len(vulnerabilities), "min_severity", options.MinSeverity)

	if err := export.Write(format, outputPath, vulnerabilities); err != nil {
		logger.Error("failed to write result", "error", err)
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s file created at: %s\n", format.Label(), outputPath)
	return nil
}
