package export

import (
	"fmt"
	"io"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/scan-io-git/nessus-export/internal/findings"
)

const (
	nessusInformationURI = "https://www.tenable.com/products/nessus"
	nessusPluginURL      = "https://www.tenable.com/plugins/nessus/"
)

// NewSARIFReport builds a single-run SARIF report with one rule and one result per finding.
// Every reporting host becomes a logical location of the result.
func NewSARIFReport(list []findings.Finding) (*sarif.Report, error) {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, fmt.Errorf("failed to create SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI("Nessus", nessusInformationURI)
	for _, f := range list {
		rule := run.AddRule(f.PluginID).
			WithDescription(f.Title).
			WithHelpURI(nessusPluginURL + f.PluginID).
			WithDefaultConfiguration(&sarif.ReportingConfiguration{
				Level: toSarifLevel(f.Severity),
			})
		name := f.Title
		rule.Name = &name
		if f.Remediation != "" {
			remediation := f.Remediation
			rule.WithHelp(&sarif.MultiformatMessageString{
				Text: &remediation,
			})
		}

		ruleProperties := sarif.NewPropertyBag()
		ruleProperties.Add("severity", findings.SeverityName(f.Severity))
		if f.BaseScore != "" {
			ruleProperties.Add("security-severity", f.BaseScore)
		}
		if f.CVSSVector != "" {
			ruleProperties.Add("cvssv3", f.CVSSVector)
		}
		if len(f.CVEs) > 0 {
			ruleProperties.Add("cve", f.CVEs)
		}
		if len(f.References) > 0 {
			ruleProperties.Add("references", f.References)
		}
		rule.WithProperties(ruleProperties.Properties)

		result := sarif.NewRuleResult(f.PluginID).
			WithMessage(sarif.NewTextMessage(f.Description)).
			WithLevel(toSarifLevel(f.Severity))
		for _, host := range f.Hosts {
			location := sarif.NewLocation()
			location.LogicalLocations = append(location.LogicalLocations, sarif.NewLogicalLocation().WithName(host).WithKind("host"))
			result.Locations = append(result.Locations, location)
		}
		result.Properties = map[string]interface{}{
			"customField": f.CustomFieldID,
		}
		run.AddResult(result)
	}
	report.AddRun(run)
	return report, nil
}

// EncodeSARIF writes list as an indented SARIF document.
func EncodeSARIF(w io.Writer, list []findings.Finding) error {
	report, err := NewSARIFReport(list)
	if err != nil {
		return err
	}
	if err := report.PrettyWrite(w); err != nil {
		return fmt.Errorf("failed to encode SARIF: %w", err)
	}
	return nil
}

func toSarifLevel(severity int) string {
	switch {
	case severity >= 3:
		return "error"
	case severity == 2:
		return "warning"
	case severity == 1:
		return "note"
	default:
		return "none"
	}
}
