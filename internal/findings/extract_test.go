package findings

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scan-io-git/nessus-export/internal/nessus"
)

type testItem struct {
	severity    int
	pluginID    string
	name        string
	description string
	extra       string
}

type testHost struct {
	name  string
	ip    string
	items []testItem
}

func buildReport(t *testing.T, hosts ...testHost) *nessus.Report {
	t.Helper()

	var sb strings.Builder
	sb.WriteString(`<NessusClientData_v2><Report name="test">`)
	for _, h := range hosts {
		fmt.Fprintf(&sb, `<ReportHost name=%q><HostProperties><tag name="host-ip">%s</tag></HostProperties>`, h.name, h.ip)
		for _, it := range h.items {
			name := it.name
			if name == "" {
				name = "Plugin " + it.pluginID
			}
			description := it.description
			if description == "" {
				description = "Description " + it.pluginID
			}
			fmt.Fprintf(&sb, `<ReportItem severity="%d" pluginID=%q pluginName=%q><description>%s</description>%s</ReportItem>`,
				it.severity, it.pluginID, name, description, it.extra)
		}
		sb.WriteString(`</ReportHost>`)
	}
	sb.WriteString(`</Report></NessusClientData_v2>`)

	report, err := nessus.Parse(strings.NewReader(sb.String()))
	require.NoError(t, err)
	return report
}

func pluginIDs(list []Finding) []string {
	ids := make([]string, 0, len(list))
	for _, f := range list {
		ids = append(ids, f.PluginID)
	}
	return ids
}

func TestExtractSeverityFilter(t *testing.T) {
	report := buildReport(t, testHost{
		name: "h1", ip: "10.0.0.1",
		items: []testItem{
			{severity: 3, pluginID: "100"},
			{severity: 1, pluginID: "200"},
		},
	})

	result := Extract(report, "cf-1")
	require.Len(t, result, 1)

	f := result[0]
	assert.Equal(t, "100", f.PluginID)
	assert.Equal(t, "cf-1", f.CustomFieldID)
	assert.Equal(t, "Plugin 100", f.Title)
	assert.Equal(t, "Description 100", f.Description)
	assert.Equal(t, Locale, f.Locale)
	assert.Equal(t, "", f.CVSSVector)
	assert.Equal(t, []string{}, f.References)
	assert.Equal(t, "", f.Remediation)
	assert.Equal(t, []string{"10.0.0.1"}, f.Hosts)
}

func TestExtractDeduplicatesAcrossHosts(t *testing.T) {
	report := buildReport(t,
		testHost{
			name: "h1", ip: "10.0.0.1",
			items: []testItem{{severity: 4, pluginID: "300", description: "first"}},
		},
		testHost{
			name: "h2", ip: "10.0.0.2",
			items: []testItem{{severity: 4, pluginID: "300", description: "second"}},
		},
	)

	result := Extract(report, "cf")
	require.Len(t, result, 1)
	assert.Equal(t, "300", result[0].PluginID)
	assert.Equal(t, "first", result[0].Description)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, result[0].Hosts)
}

func TestExtractOrderAndCount(t *testing.T) {
	report := buildReport(t,
		testHost{
			name: "h1", ip: "10.0.0.1",
			items: []testItem{
				{severity: 2, pluginID: "30"},
				{severity: 0, pluginID: "1"},
				{severity: 3, pluginID: "10"},
				{severity: 2, pluginID: "30"},
			},
		},
		testHost{
			name: "h2", ip: "10.0.0.2",
			items: []testItem{
				{severity: 4, pluginID: "20"},
				{severity: 1, pluginID: "40"},
				{severity: 3, pluginID: "10"},
			},
		},
		testHost{name: "h3", ip: "10.0.0.3"},
	)

	result := Extract(report, "cf")
	assert.Equal(t, []string{"30", "10", "20"}, pluginIDs(result))
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, result[1].Hosts)

	again := Extract(report, "cf")
	assert.Equal(t, result, again)
}

func TestExtractSameHostReportedTwice(t *testing.T) {
	report := buildReport(t, testHost{
		name: "h1", ip: "10.0.0.1",
		items: []testItem{
			{severity: 2, pluginID: "50"},
			{severity: 2, pluginID: "50"},
		},
	})

	result := Extract(report, "cf")
	require.Len(t, result, 1)
	assert.Equal(t, []string{"10.0.0.1"}, result[0].Hosts)
}

func TestExtractOptionalFields(t *testing.T) {
	report := buildReport(t, testHost{
		name: "h1", ip: "10.0.0.1",
		items: []testItem{{
			severity: 3,
			pluginID: "100",
			extra: `<cvss3_vector>CVSS:3.0/AV:N</cvss3_vector><see_also>http://a
http://b</see_also><solution>Patch it.</solution><cvss3_base_score>7.5</cvss3_base_score><cve>CVE-2020-0001</cve>`,
		}},
	})

	result := Extract(report, "cf")
	require.Len(t, result, 1)

	f := result[0]
	assert.Equal(t, "CVSS:3.0/AV:N", f.CVSSVector)
	assert.Equal(t, []string{"http://a", "http://b"}, f.References)
	assert.Equal(t, "Patch it.", f.Remediation)
	assert.Equal(t, "7.5", f.BaseScore)
	assert.Equal(t, []string{"CVE-2020-0001"}, f.CVEs)
}

func TestExtractMinSeverity(t *testing.T) {
	report := buildReport(t, testHost{
		name: "h1", ip: "10.0.0.1",
		items: []testItem{
			{severity: 0, pluginID: "1"},
			{severity: 1, pluginID: "2"},
			{severity: 2, pluginID: "3"},
			{severity: 3, pluginID: "4"},
			{severity: 4, pluginID: "5"},
		},
	})

	tests := []struct {
		name        string
		minSeverity int
		want        []string
	}{
		{name: "Default", minSeverity: DefaultMinSeverity, want: []string{"3", "4", "5"}},
		{name: "Everything", minSeverity: 0, want: []string{"1", "2", "3", "4", "5"}},
		{name: "High and above", minSeverity: 3, want: []string{"4", "5"}},
		{name: "Critical only", minSeverity: 4, want: []string{"5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Extract(report, "cf", WithMinSeverity(tt.minSeverity))
			assert.Equal(t, tt.want, pluginIDs(result))
			for _, f := range result {
				assert.GreaterOrEqual(t, f.Severity, tt.minSeverity)
			}
		})
	}
}

func TestExtractEmpty(t *testing.T) {
	assert.Equal(t, []Finding{}, Extract(nil, "cf"))
	assert.Equal(t, []Finding{}, Extract(&nessus.Report{}, "cf"))
}

func TestSeverityName(t *testing.T) {
	assert.Equal(t, "Info", SeverityName(0))
	assert.Equal(t, "Low", SeverityName(1))
	assert.Equal(t, "Medium", SeverityName(2))
	assert.Equal(t, "High", SeverityName(3))
	assert.Equal(t, "Critical", SeverityName(4))
}
