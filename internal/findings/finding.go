package findings

// Locale is the fixed locale of every exported finding.
const Locale = "EN"

// Finding is a normalized vulnerability, one per unique Nessus plugin.
type Finding struct {
	PluginID      string
	CustomFieldID string
	Title         string
	Severity      int
	CVSSVector    string
	References    []string
	Locale        string
	Description   string
	Remediation   string

	// Fields below are not part of the tracking-system schema and only feed the SARIF and CycloneDX exports.
	RiskFactor string
	BaseScore  string
	CVEs       []string
	// Hosts lists the address of every host that reported the plugin, in first-seen order.
	Hosts []string
}

// SeverityName maps a Nessus severity to its label.
func SeverityName(severity int) string {
	switch {
	case severity <= 0:
		return "Info"
	case severity == 1:
		return "Low"
	case severity == 2:
		return "Medium"
	case severity == 3:
		return "High"
	default:
		return "Critical"
	}
}
