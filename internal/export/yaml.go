package export

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v2"

	"github.com/scan-io-git/nessus-export/internal/findings"
)

// Vulnerability is one entry of the tracking-system import file.
// Field order defines the key order of the emitted YAML.
type Vulnerability struct {
	CVSSv3  string   `yaml:"cvssv3"`
	Details []Detail `yaml:"details"`
}

// Detail carries the localized text of a Vulnerability.
type Detail struct {
	References   []string      `yaml:"references"`
	Title        string        `yaml:"title"`
	CustomFields []CustomField `yaml:"customFields"`
	Locale       string        `yaml:"locale"`
	Description  string        `yaml:"description"`
	Remediation  string        `yaml:"remediation"`
}

// CustomField pairs a tracking-system field ID with its value.
type CustomField struct {
	CustomField string `yaml:"customField"`
	Text        string `yaml:"text"`
}

// NewVulnerability maps a finding onto the import schema.
func NewVulnerability(f findings.Finding) Vulnerability {
	references := f.References
	if references == nil {
		references = []string{}
	}
	locale := f.Locale
	if locale == "" {
		locale = findings.Locale
	}

	return Vulnerability{
		CVSSv3: f.CVSSVector,
		Details: []Detail{
			{
				References: references,
				Title:      f.Title,
				CustomFields: []CustomField{
					{
						CustomField: f.CustomFieldID,
						Text:        f.PluginID,
					},
				},
				Locale:      locale,
				Description: f.Description,
				Remediation: f.Remediation,
			},
		},
	}
}

// EncodeYAML writes list as a block-style YAML sequence.
func EncodeYAML(w io.Writer, list []findings.Finding) error {
	vulnerabilities := make([]Vulnerability, 0, len(list))
	for _, f := range list {
		vulnerabilities = append(vulnerabilities, NewVulnerability(f))
	}

	encoder := yaml.NewEncoder(w)
	if err := encoder.Encode(vulnerabilities); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to flush YAML: %w", err)
	}
	return nil
}
