package output

import (
	"encoding/csv"
	"strconv"

	"github.com/Darin2/monitor-public/internal/audit"
)

// printReportsCSV writes one row per check outcome.
func (p *Printer) printReportsCSV(reports []audit.PageReport) error {
	w := csv.NewWriter(p.writer)
	defer w.Flush()

	// Write header
	if err := w.Write([]string{"target", "score", "status", "message"}); err != nil {
		return err
	}

	for _, r := range reports {
		score := strconv.FormatFloat(r.Score, 'f', 1, 64)

		if r.Error != "" {
			if err := w.Write([]string{r.Target, score, "error", r.Error}); err != nil {
				return err
			}
			continue
		}

		groups := []struct {
			status   string
			messages []string
		}{
			{"passed", r.Passed},
			{"warning", r.Warnings},
			{"failed", r.Failed},
		}
		for _, g := range groups {
			for _, msg := range g.messages {
				if err := w.Write([]string{r.Target, score, g.status, msg}); err != nil {
					return err
				}
			}
		}
	}

	w.Flush()
	return w.Error()
}
