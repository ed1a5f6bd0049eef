package export

import (
	"io"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	cdx "github.com/CycloneDX/cyclonedx-go"
	"github.com/google/uuid"

	"github.com/scan-io-git/nessus-export/internal/findings"
)

var toolVersion string

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" {
		toolVersion = "unknown"
	} else {
		toolVersion = info.Main.Version
	}
}

const (
	hostRefPrefix   = "host:"
	pluginRefPrefix = "nessus-plugin:"
	nvdURL          = "https://nvd.nist.gov/vuln/detail/"
)

// NewCycloneDXBOM builds a CycloneDX BOM where every scanned host is a device component
// and every finding a vulnerability affecting the hosts that reported it.
func NewCycloneDXBOM(list []findings.Finding) cdx.BOM {
	// those MUST be initialized as cyclone-dx JSON schema do not allow items to be null
	components := []cdx.Component{}
	vulnerabilities := []cdx.Vulnerability{}

	knownHosts := make(map[string]struct{})
	for _, f := range list {
		affects := make([]cdx.Affects, 0, len(f.Hosts))
		for _, host := range f.Hosts {
			ref := hostRefPrefix + host
			if _, ok := knownHosts[host]; !ok {
				knownHosts[host] = struct{}{}
				components = append(components, cdx.Component{
					BOMRef: ref,
					Type:   cdx.ComponentTypeDevice,
					Name:   host,
				})
			}
			affects = append(affects, cdx.Affects{Ref: ref})
		}
		vulnerabilities = append(vulnerabilities, newCycloneDXVulnerability(f, affects))
	}

	return cdx.BOM{
		JSONSchema:   "https://cyclonedx.org/schema/bom-1.6.schema.json",
		BOMFormat:    "CycloneDX",
		SpecVersion:  cdx.SpecVersion1_6,
		SerialNumber: "urn:uuid:" + uuid.New().String(),
		Version:      1,
		Metadata: &cdx.Metadata{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Component: &cdx.Component{
				Type:    cdx.ComponentTypeApplication,
				Name:    "nessus-export",
				Version: toolVersion,
			},
		},
		Components:      &components,
		Vulnerabilities: &vulnerabilities,
	}
}

func newCycloneDXVulnerability(f findings.Finding, affects []cdx.Affects) cdx.Vulnerability {
	source := &cdx.Source{
		Name: "Nessus",
		URL:  nessusPluginURL + f.PluginID,
	}

	rating := cdx.VulnerabilityRating{
		Source:   source,
		Severity: toCycloneDXSeverity(f.Severity),
		Vector:   f.CVSSVector,
	}
	if f.CVSSVector != "" {
		rating.Method = cvssMethod(f.CVSSVector)
	}
	if score, err := strconv.ParseFloat(f.BaseScore, 64); err == nil {
		rating.Score = &score
	}

	advisories := make([]cdx.Advisory, 0, len(f.References))
	for _, ref := range f.References {
		if ref = strings.TrimSpace(ref); ref != "" {
			advisories = append(advisories, cdx.Advisory{URL: ref})
		}
	}

	references := make([]cdx.VulnerabilityReference, 0, len(f.CVEs))
	for _, cve := range f.CVEs {
		references = append(references, cdx.VulnerabilityReference{
			ID:     cve,
			Source: &cdx.Source{Name: "NVD", URL: nvdURL + cve},
		})
	}

	properties := []cdx.Property{
		{Name: "nessus:customField", Value: f.CustomFieldID},
		{Name: "nessus:locale", Value: f.Locale},
	}

	return cdx.Vulnerability{
		BOMRef:         pluginRefPrefix + f.PluginID,
		ID:             f.PluginID,
		Source:         source,
		References:     &references,
		Ratings:        &[]cdx.VulnerabilityRating{rating},
		Description:    f.Title,
		Detail:         f.Description,
		Recommendation: f.Remediation,
		Advisories:     &advisories,
		Affects:        &affects,
		Properties:     &properties,
	}
}

// EncodeCycloneDX writes list as a pretty printed CycloneDX JSON document.
func EncodeCycloneDX(w io.Writer, list []findings.Finding) error {
	bom := NewCycloneDXBOM(list)
	return cdx.NewBOMEncoder(w, cdx.BOMFileFormatJSON).SetPretty(true).Encode(&bom)
}

func toCycloneDXSeverity(severity int) cdx.Severity {
	switch {
	case severity >= 4:
		return cdx.SeverityCritical
	case severity == 3:
		return cdx.SeverityHigh
	case severity == 2:
		return cdx.SeverityMedium
	case severity == 1:
		return cdx.SeverityLow
	default:
		return cdx.SeverityInfo
	}
}

func cvssMethod(vector string) cdx.ScoringMethod {
	if strings.HasPrefix(vector, "CVSS:3.1/") {
		return cdx.ScoringMethodCVSSv31
	}
	return cdx.ScoringMethodCVSSv3
}
