package nessus

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"

	scanerrors "github.com/scan-io-git/nessus-export/internal/errors"
)

// Load reads and validates the Nessus report at path.
// A missing path is reported as NotFoundError before any read is attempted.
func Load(path string) (*Report, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, scanerrors.NewNotFoundError(path)
		}
		return nil, fmt.Errorf("path stat error: %w", err)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer file.Close()

	return decode(file, path)
}

// Parse decodes and validates a Nessus report read from r.
func Parse(r io.Reader) (*Report, error) {
	return decode(r, "")
}

func decode(r io.Reader, source string) (*Report, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	var doc ClientData
	if err := dec.Decode(&doc); err != nil {
		return nil, scanerrors.NewParseError(source, err)
	}
	if err := checkTrailing(dec); err != nil {
		return nil, scanerrors.NewParseError(source, err)
	}
	if doc.Report == nil {
		return nil, scanerrors.NewSchemaError("", "", "Report")
	}
	if err := doc.Report.Validate(); err != nil {
		return nil, err
	}
	return doc.Report, nil
}

// checkTrailing reads the rest of the document after the root element.
// Only whitespace, comments and processing instructions may follow it.
func checkTrailing(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.Comment, xml.ProcInst:
		case xml.CharData:
			if len(strings.TrimSpace(string(t))) != 0 {
				return fmt.Errorf("unexpected content after root element: %q", string(t))
			}
		default:
			line, _ := dec.InputPos()
			return fmt.Errorf("unexpected %T after root element on line %d", tok, line)
		}
	}
}

// Validate checks every required field and resolves host addresses and severities.
// It stops at the first problem found.
func (r *Report) Validate() error {
	for _, host := range r.Hosts {
		if err := host.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (h *ReportHost) validate() error {
	ip, ok := h.lookupIP()
	if !ok {
		return scanerrors.NewSchemaError(h.Name, "", "HostProperties/tag")
	}
	h.ip = ip

	for _, item := range h.Items {
		if err := item.validate(ip); err != nil {
			return err
		}
	}
	return nil
}

// lookupIP prefers the host-ip tag and falls back to the first tag.
func (h *ReportHost) lookupIP() (string, bool) {
	if h.Properties == nil || len(h.Properties.Tags) == 0 {
		return "", false
	}
	for _, tag := range h.Properties.Tags {
		if tag.Name == HostIPTag {
			return strings.TrimSpace(tag.Value), true
		}
	}
	return strings.TrimSpace(h.Properties.Tags[0].Value), true
}

func (i *ReportItem) validate(host string) error {
	pluginID := i.PluginID()
	if i.RawPluginID == nil {
		return scanerrors.NewSchemaError(host, "", "pluginID")
	}
	if i.RawSeverity == nil {
		return scanerrors.NewSchemaError(host, pluginID, "severity")
	}
	severity, err := strconv.Atoi(strings.TrimSpace(*i.RawSeverity))
	if err != nil {
		return scanerrors.NewInvalidFieldError(host, pluginID, "severity", fmt.Sprintf("is not an integer: %q", *i.RawSeverity))
	}
	i.severity = severity

	if i.RawName == nil {
		return scanerrors.NewSchemaError(host, pluginID, "pluginName")
	}
	if i.RawDescription == nil {
		return scanerrors.NewSchemaError(host, pluginID, "description")
	}
	return nil
}

// textOrEmpty returns element text without surrounding whitespace.
func textOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func splitLines(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\n")
}
