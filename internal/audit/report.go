// Package audit checks HTML pages for the signals AI answer engines rely on:
// structured data, heading structure, metadata, authorship, dates, lists,
// link text, image alt text and semantic elements.
package audit

import "fmt"

// PageReport collects the outcome of every check run against one target.
// Warnings never count against the score.
type PageReport struct {
	Target   string   `json:"target"`
	Passed   []string `json:"passed"`
	Warnings []string `json:"warnings"`
	Failed   []string `json:"failed"`
	Score    float64  `json:"score"`
	Bytes    int      `json:"bytes"`
	Error    string   `json:"error,omitempty"`
}

func newPageReport(target string) PageReport {
	return PageReport{
		Target:   target,
		Passed:   []string{},
		Warnings: []string{},
		Failed:   []string{},
	}
}

// failedReport is the report of a target that could not be audited at all.
func failedReport(target string, err error) PageReport {
	r := newPageReport(target)
	r.Error = err.Error()
	return r
}

// TotalChecks is the number of checks that either passed or failed.
func (r PageReport) TotalChecks() int {
	return len(r.Passed) + len(r.Failed)
}

// HasFailures reports whether the target could not be audited or any check failed.
func (r PageReport) HasFailures() bool {
	return r.Error != "" || len(r.Failed) > 0
}

func (r *PageReport) pass(format string, args ...any) {
	r.Passed = append(r.Passed, fmt.Sprintf(format, args...))
}

func (r *PageReport) warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *PageReport) fail(format string, args ...any) {
	r.Failed = append(r.Failed, fmt.Sprintf(format, args...))
}

func (r *PageReport) score() {
	if total := r.TotalChecks(); total > 0 {
		r.Score = float64(len(r.Passed)) / float64(total) * 100
	}
}
