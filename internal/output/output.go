// Package output provides multi-format output rendering for CLI commands.
// Supports text (human-readable), JSON, and CSV formats.
package output

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/Darin2/monitor-public/internal/audit"
)

// Format represents the output format type
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ParseFormat converts a string to a Format, returning an error if invalid
func ParseFormat(s string) (Format, error) {
	switch s {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("invalid output format %q: must be text, json, or csv", s)
	}
}

// EntrySummary describes one rendered descriptor entry
type EntrySummary struct {
	Index   int      `json:"index"`
	Kind    string   `json:"kind"`
	Type    string   `json:"type"`
	Bytes   int      `json:"bytes"`
	Skipped []string `json:"skipped,omitempty"`
}

// GenerateSummary describes the outcome of a generate run
type GenerateSummary struct {
	Source   string         `json:"source"`
	Output   string         `json:"output,omitempty"` // empty when written to stdout
	Combined bool           `json:"combined"`
	Blocks   int            `json:"blocks"`
	Bytes    int            `json:"bytes"`
	Entries  []EntrySummary `json:"entries"`
}

// Printer handles output formatting
type Printer struct {
	format Format
	writer io.Writer
	mu     *sync.Mutex
}

// NewPrinter creates a new Printer with the specified format
func NewPrinter(format Format) *Printer {
	return &Printer{
		format: format,
		writer: os.Stdout,
		mu:     &printMutex,
	}
}

// WithWriter sets a custom writer (useful for testing)
func (p *Printer) WithWriter(w io.Writer) *Printer {
	p.writer = w
	return p
}

// Format returns the configured format
func (p *Printer) Format() Format {
	return p.format
}

// PrintReports outputs audit reports in the configured format
func (p *Printer) PrintReports(reports []audit.PageReport) error {
	switch p.format {
	case FormatJSON:
		return p.printReportsJSON(reports)
	case FormatCSV:
		return p.printReportsCSV(reports)
	default:
		for _, r := range reports {
			if err := p.PrintReport(r); err != nil {
				return err
			}
		}
		if len(reports) > 1 {
			return p.PrintReportsTable(reports)
		}
		return nil
	}
}

// PrintGenerateSummary outputs a generate summary. CSV falls back to text.
func (p *Printer) PrintGenerateSummary(summary GenerateSummary) error {
	if p.format == FormatJSON {
		return p.printJSON(summary)
	}
	return p.printGenerateText(summary)
}
