package export

import (
	"fmt"
	"io"
	"strings"

	scanerrors "github.com/scan-io-git/nessus-export/internal/errors"
	"github.com/scan-io-git/nessus-export/internal/files"
	"github.com/scan-io-git/nessus-export/internal/findings"
)

// Format is an output format supported by Write.
type Format string

const (
	FormatYAML      Format = "yaml"
	FormatSARIF     Format = "sarif"
	FormatCycloneDX Format = "cyclonedx"
)

// Formats lists every supported format in the order they are documented.
var Formats = []Format{FormatYAML, FormatSARIF, FormatCycloneDX}

// ParseFormat resolves a user supplied format name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "yaml", "yml":
		return FormatYAML, nil
	case "sarif":
		return FormatSARIF, nil
	case "cyclonedx", "cdx":
		return FormatCycloneDX, nil
	default:
		return "", fmt.Errorf("unsupported output format %q", name)
	}
}

// DefaultSuffix is appended to the input name (without extension) when no output path is given.
func (f Format) DefaultSuffix() string {
	switch f {
	case FormatSARIF:
		return "_vulnerabilities.sarif"
	case FormatCycloneDX:
		return "_vulnerabilities.cdx.json"
	default:
		return "_vulnerabilities.yml"
	}
}

// Label is the human readable name used in messages.
func (f Format) Label() string {
	switch f {
	case FormatSARIF:
		return "SARIF"
	case FormatCycloneDX:
		return "CycloneDX"
	default:
		return "YAML"
	}
}

// Write serializes list to path in the given format.
// The file is replaced atomically; any failure is returned as a WriteError.
func Write(format Format, path string, list []findings.Finding) error {
	var encode func(io.Writer, []findings.Finding) error
	switch format {
	case FormatYAML:
		encode = EncodeYAML
	case FormatSARIF:
		encode = EncodeSARIF
	case FormatCycloneDX:
		encode = EncodeCycloneDX
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}

	err := files.WriteFileAtomic(path, func(w io.Writer) error {
		return encode(w, list)
	})
	if err != nil {
		return scanerrors.NewWriteError(path, err)
	}
	return nil
}

// WriteYAML writes the tracking-system YAML document to path.
func WriteYAML(path string, list []findings.Finding) error {
	return Write(FormatYAML, path, list)
}

// WriteSARIF writes a SARIF 2.1.0 report to path.
func WriteSARIF(path string, list []findings.Finding) error {
	return Write(FormatSARIF, path, list)
}

// WriteCycloneDX writes a CycloneDX JSON BOM with a vulnerabilities section to path.
func WriteCycloneDX(path string, list []findings.Finding) error {
	return Write(FormatCycloneDX, path, list)
}
