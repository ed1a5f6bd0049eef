package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scan-io-git/nessus-export/cmd/convert"
	"github.com/scan-io-git/nessus-export/cmd/version"
)

// NewRootCmd builds the command tree. The root command performs the conversion itself.
func NewRootCmd() *cobra.Command {
	rootCmd := convert.NewConvertCmd()
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(version.NewVersionCmd())
	return rootCmd
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		return 1
	}
	return 0
}
