package convert

import (
	"fmt"
	"os"

	scanerrors "github.com/scan-io-git/nessus-export/internal/errors"
	"github.com/scan-io-git/nessus-export/internal/config"
	"github.com/scan-io-git/nessus-export/internal/export"
	"github.com/scan-io-git/nessus-export/internal/files"
)

// validateConvertArgs validates the arguments provided to the convert command and returns the output format.
func validateConvertArgs(options *RunOptionsConvert, args []string) (export.Format, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("exactly two arguments are required: INPUT_FILE and CUSTOM_FIELD_ID, got %d", len(args))
	}
	options.InputFile = args[0]
	options.CustomFieldID = args[1]

	if _, err := os.Stat(options.InputFile); os.IsNotExist(err) {
		return "", scanerrors.NewNotFoundError(options.InputFile)
	}
	if err := files.ValidatePath(options.InputFile); err != nil {
		return "", err
	}

	format, err := export.ParseFormat(options.Format)
	if err != nil {
		return "", err
	}

	if err := config.ValidateSeverity(options.MinSeverity); err != nil {
		return "", err
	}

	return format, nil
}
