package nessus

import (
	"encoding/xml"
	"strings"
)

// HostIPTag is the HostProperties tag carrying the scanned host address.
const HostIPTag = "host-ip"

// ClientData is the root element of a .nessus (v2) file.
type ClientData struct {
	XMLName xml.Name `xml:"NessusClientData_v2"`
	Report  *Report  `xml:"Report"`
}

// Report groups the scanned hosts of a single Nessus scan.
type Report struct {
	Name  string        `xml:"name,attr"`
	Hosts []*ReportHost `xml:"ReportHost"`
}

// ReportHost holds the results for one scanned host.
type ReportHost struct {
	Name       string          `xml:"name,attr"`
	Properties *HostProperties `xml:"HostProperties"`
	Items      []*ReportItem   `xml:"ReportItem"`

	ip string
}

// HostProperties is the list of name/value tags Nessus records for a host.
type HostProperties struct {
	Tags []Tag `xml:"tag"`
}

// Tag is a single HostProperties entry.
type Tag struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

// ReportItem is a single plugin result on a host.
// Pointer fields are optional in the file format; use the accessors for defaulted values.
type ReportItem struct {
	Port         string `xml:"port,attr"`
	Protocol     string `xml:"protocol,attr"`
	ServiceName  string `xml:"svc_name,attr"`
	PluginFamily string `xml:"pluginFamily,attr"`

	RawSeverity *string `xml:"severity,attr"`
	RawPluginID *string `xml:"pluginID,attr"`
	RawName     *string `xml:"pluginName,attr"`

	RawDescription *string  `xml:"description"`
	CVSS3Vector    *string  `xml:"cvss3_vector"`
	CVSS3BaseScore *string  `xml:"cvss3_base_score"`
	SeeAlso        *string  `xml:"see_also"`
	Solution       *string  `xml:"solution"`
	Synopsis       *string  `xml:"synopsis"`
	RiskFactor     *string  `xml:"risk_factor"`
	CVEs           []string `xml:"cve"`

	severity int
}

// IP returns the host address resolved during validation.
func (h *ReportHost) IP() string {
	return h.ip
}

// Severity returns the numeric severity (0 info .. 4 critical) resolved during validation.
func (i *ReportItem) Severity() int {
	return i.severity
}

func (i *ReportItem) PluginID() string {
	return valueOrEmpty(i.RawPluginID)
}

func (i *ReportItem) PluginName() string {
	return valueOrEmpty(i.RawName)
}

func (i *ReportItem) Description() string {
	return textOrEmpty(i.RawDescription)
}

// CVSSVector returns the CVSSv3 vector or an empty string.
func (i *ReportItem) CVSSVector() string {
	return textOrEmpty(i.CVSS3Vector)
}

// CVEIDs returns a copy of the cve entries with surrounding whitespace removed.
func (i *ReportItem) CVEIDs() []string {
	ids := make([]string, 0, len(i.CVEs))
	for _, cve := range i.CVEs {
		if cve = strings.TrimSpace(cve); cve != "" {
			ids = append(ids, cve)
		}
	}
	return ids
}

// References returns the see_also entries split on newlines.
// An absent see_also yields an empty, non-nil slice.
func (i *ReportItem) References() []string {
	if i.SeeAlso == nil {
		return []string{}
	}
	return splitLines(*i.SeeAlso)
}

// Remediation returns the solution text or an empty string.
func (i *ReportItem) Remediation() string {
	return textOrEmpty(i.Solution)
}

func (i *ReportItem) Risk() string {
	return textOrEmpty(i.RiskFactor)
}

func (i *ReportItem) BaseScore() string {
	return textOrEmpty(i.CVSS3BaseScore)
}
