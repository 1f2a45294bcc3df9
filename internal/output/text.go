package output

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/Darin2/monitor-public/internal/audit"
)

// printMutex keeps reports printed from concurrent audits from interleaving
var printMutex sync.Mutex

var (
	heavyRule = strings.Repeat("=", 50)
	lightRule = strings.Repeat("-", 50)
)

// PrintReport prints a single audit report as one uninterrupted block (thread-safe)
func (p *Printer) PrintReport(r audit.PageReport) error {
	var buf bytes.Buffer

	_, _ = fmt.Fprintln(&buf)
	_, _ = fmt.Fprintln(&buf, "AIEO Audit Report")
	_, _ = fmt.Fprintln(&buf, heavyRule)
	_, _ = fmt.Fprintf(&buf, "Target: %s\n\n", r.Target)

	if r.Error != "" {
		_, _ = fmt.Fprintf(&buf, "ERROR: %s\n", r.Error)
		return p.write(buf.Bytes())
	}

	for _, msg := range r.Passed {
		_, _ = fmt.Fprintf(&buf, "PASSED:  %s\n", msg)
	}
	for _, msg := range r.Warnings {
		_, _ = fmt.Fprintf(&buf, "WARNING: %s\n", msg)
	}
	for _, msg := range r.Failed {
		_, _ = fmt.Fprintf(&buf, "FAILED:  %s\n", msg)
	}

	_, _ = fmt.Fprintln(&buf)
	_, _ = fmt.Fprintln(&buf, lightRule)
	_, _ = fmt.Fprintf(&buf, "Overall Score: %d/%d (%.0f%%)\n", len(r.Passed), r.TotalChecks(), r.Score)
	_, _ = fmt.Fprintf(&buf, "Page size: %s\n\n", humanize.Bytes(uint64(r.Bytes)))

	if len(r.Failed) > 0 || len(r.Warnings) > 0 {
		_, _ = fmt.Fprintln(&buf, "Recommendations:")
		if len(r.Failed) > 0 {
			_, _ = fmt.Fprintln(&buf, "- Fix all failed checks before publishing")
		}
		if len(r.Warnings) > 0 {
			_, _ = fmt.Fprintln(&buf, "- Review warnings and improve where possible")
		}
	} else {
		_, _ = fmt.Fprintln(&buf, "Excellent! All AIEO checks passed.")
	}

	return p.write(buf.Bytes())
}

// PrintReportsTable prints one summary row per report (thread-safe)
func (p *Printer) PrintReportsTable(reports []audit.PageReport) error {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "TARGET\tSCORE\tPASSED\tWARNINGS\tFAILED\tSIZE")
	_, _ = fmt.Fprintln(w, "---\t---\t---\t---\t---\t---")

	for _, r := range reports {
		if r.Error != "" {
			_, _ = fmt.Fprintf(w, "%s\terror\t-\t-\t-\t-\n", r.Target)
			continue
		}
		_, _ = fmt.Fprintf(w, "%s\t%.0f%%\t%d\t%d\t%d\t%s\n",
			r.Target, r.Score, len(r.Passed), len(r.Warnings), len(r.Failed),
			humanize.Bytes(uint64(r.Bytes)))
	}
	_ = w.Flush()

	_, _ = fmt.Fprintf(&buf, "\nTotal targets: %d\n", len(reports))
	return p.write(buf.Bytes())
}

func (p *Printer) printGenerateText(s GenerateSummary) error {
	var buf bytes.Buffer

	_, _ = fmt.Fprintf(&buf, "Generated %d schema %s (%s) from %s\n",
		s.Blocks, plural(s.Blocks, "block", "blocks"), humanize.Bytes(uint64(s.Bytes)), s.Source)

	if len(s.Entries) > 0 {
		w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "INDEX\tKIND\tTYPE\tSIZE\tSKIPPED")
		_, _ = fmt.Fprintln(w, "---\t---\t---\t---\t---")
		for _, e := range s.Entries {
			_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n",
				e.Index, e.Kind, e.Type, humanize.Bytes(uint64(e.Bytes)), len(e.Skipped))
		}
		_ = w.Flush()
	}

	for _, e := range s.Entries {
		for _, skipped := range e.Skipped {
			_, _ = fmt.Fprintf(&buf, "  Skipped in entry %d: %s\n", e.Index, skipped)
		}
	}

	if s.Combined {
		_, _ = fmt.Fprintln(&buf, "Entries combined into a single block")
	}
	if s.Output != "" {
		_, _ = fmt.Fprintf(&buf, "Written to %s\n", s.Output)
	}

	return p.write(buf.Bytes())
}

func (p *Printer) write(b []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, err := p.writer.Write(b)
	return err
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
