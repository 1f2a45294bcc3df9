package output

import (
	"github.com/goccy/go-json"

	"github.com/Darin2/monitor-public/internal/audit"
)

func (p *Printer) printReportsJSON(reports []audit.PageReport) error {
	if reports == nil {
		reports = []audit.PageReport{}
	}
	return p.printJSON(reports)
}

func (p *Printer) printJSON(v any) error {
	encoder := json.NewEncoder(p.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
