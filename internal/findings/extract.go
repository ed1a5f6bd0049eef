package findings

import (
	"github.com/hashicorp/go-hclog"

	"github.com/scan-io-git/nessus-export/internal/nessus"
)

// DefaultMinSeverity drops Info (0) and Low (1) items.
const DefaultMinSeverity = 2

type extractOptions struct {
	minSeverity int
	logger      hclog.Logger
}

// Option customizes Extract.
type Option func(*extractOptions)

// WithMinSeverity sets the lowest severity an item needs to be exported.
func WithMinSeverity(severity int) Option {
	return func(o *extractOptions) {
		o.minSeverity = severity
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger hclog.Logger) Option {
	return func(o *extractOptions) {
		o.logger = logger
	}
}

// Extract walks hosts and items in document order and returns one Finding per plugin ID,
// built from the first eligible occurrence. customFieldID is copied verbatim into every Finding.
func Extract(report *nessus.Report, customFieldID string, opts ...Option) []Finding {
	options := extractOptions{
		minSeverity: DefaultMinSeverity,
		logger:      hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(&options)
	}

	result := make([]Finding, 0)
	if report == nil {
		return result
	}

	seen := make(map[string]int)
	for _, host := range report.Hosts {
		kept, skipped := 0, 0
		for _, item := range host.Items {
			if item.Severity() < options.minSeverity {
				skipped++
				continue
			}

			pluginID := item.PluginID()
			if idx, exists := seen[pluginID]; exists {
				result[idx].Hosts = appendUnique(result[idx].Hosts, host.IP())
				skipped++
				continue
			}

			seen[pluginID] = len(result)
			result = append(result, normalize(item, host.IP(), customFieldID))
			kept++
		}
		options.logger.Debug("host processed", "host", host.Name, "ip", host.IP(), "new", kept, "skipped", skipped)
	}

	return result
}

func normalize(item *nessus.ReportItem, hostIP, customFieldID string) Finding {
	return Finding{
		PluginID:      item.PluginID(),
		CustomFieldID: customFieldID,
		Title:         item.PluginName(),
		Severity:      item.Severity(),
		CVSSVector:    item.CVSSVector(),
		References:    item.References(),
		Locale:        Locale,
		Description:   item.Description(),
		Remediation:   item.Remediation(),
		RiskFactor:    item.Risk(),
		BaseScore:     item.BaseScore(),
		CVEs:          item.CVEIDs(),
		Hosts:         []string{hostIP},
	}
}

func appendUnique(list []string, value string) []string {
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}
