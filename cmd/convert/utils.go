package convert

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/scan-io-git/nessus-export/internal/config"
	"github.com/scan-io-git/nessus-export/internal/export"
	"github.com/scan-io-git/nessus-export/internal/files"
)

// hasFlags reports whether any flag was set on the command line.
func hasFlags(flags *pflag.FlagSet) bool {
	set := false
	flags.Visit(func(*pflag.Flag) {
		set = true
	})
	return set
}

// applyConfigDefaults fills options from the config file unless the matching flag was given explicitly.
func applyConfigDefaults(flags *pflag.FlagSet, options *RunOptionsConvert, cfg *config.Config) {
	if !flags.Changed("format") {
		options.Format = config.SetThen(cfg.Export.Format, options.Format)
	}
	if !flags.Changed("min-severity") && cfg.Export.MinSeverity != nil {
		options.MinSeverity = *cfg.Export.MinSeverity
	}
}

// resolveOutputPath returns the explicit output path or derives one from the input file name.
func resolveOutputPath(options *RunOptionsConvert, format export.Format) (string, error) {
	if options.OutputPath == "" {
		return files.DefaultOutputPath(options.InputFile, format.DefaultSuffix()), nil
	}

	path, err := files.ExpandPath(options.OutputPath)
	if err != nil {
		return "", fmt.Errorf("failed to unwrap path %q: %w", options.OutputPath, err)
	}
	return path, nil
}
