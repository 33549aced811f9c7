package plan

import (
	"fmt"
	"strings"

	"github.com/indaco/vermanip/internal/printer"
	"github.com/tidwall/sjson"
)

// OutputFormat controls how a plan is displayed.
type OutputFormat string

const (
	// FormatText outputs human-readable text.
	FormatText OutputFormat = "text"

	// FormatJSON outputs machine-readable JSON.
	FormatJSON OutputFormat = "json"
)

// ParseOutputFormat converts a string to OutputFormat, defaulting to text.
func ParseOutputFormat(s string) OutputFormat {
	if s == "json" {
		return FormatJSON
	}
	return FormatText
}

// Formatter renders plan results.
type Formatter struct {
	format OutputFormat
}

// NewFormatter creates a new Formatter with the specified output format.
func NewFormatter(format OutputFormat) *Formatter {
	return &Formatter{format: format}
}

// Format renders result.
func (f *Formatter) Format(result *Result) (string, error) {
	if f.format == FormatJSON {
		return f.formatJSON(result)
	}
	return f.formatText(result), nil
}

func (f *Formatter) formatText(result *Result) string {
	if !result.Enabled() {
		return printer.Warning("Version manipulation is disabled, nothing to do")
	}

	var sb strings.Builder
	sb.WriteString(printer.Info("Planned version changes"))
	sb.WriteString("\n")
	sb.WriteString(printer.Faint(strings.Repeat("-", 60)))
	for _, e := range result.Entries() {
		fmt.Fprintf(&sb, "\n%s -> %s %s", e.GAV, printer.Bold(e.NewVersion), printer.Faint(e.Path))
	}
	return sb.String()
}

// formatJSON builds the document with sjson so that entries keep descriptor order.
func (f *Formatter) formatJSON(result *Result) (string, error) {
	doc := `{}`
	var err error

	if doc, err = sjson.Set(doc, "enabled", result.Enabled()); err != nil {
		return "", err
	}
	if doc, err = sjson.SetRaw(doc, "changes", `[]`); err != nil {
		return "", err
	}

	for _, e := range result.Entries() {
		entry := map[string]string{"path": e.Path, "gav": e.GAV, "version": e.NewVersion}
		if doc, err = sjson.Set(doc, "changes.-1", entry); err != nil {
			return "", fmt.Errorf("failed to encode plan entry %s: %w", e.GAV, err)
		}
	}

	return doc, nil
}
