package audit

import (
	"context"
	"log"
	"net/http"
	"sync"
)

// Runner audits several targets with a bounded number of workers.
type Runner struct {
	Client      *http.Client
	Concurrency int
}

// NewRunner creates a Runner. A concurrency below one runs targets one at a time.
func NewRunner(client *http.Client, concurrency int) *Runner {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Runner{Client: client, Concurrency: concurrency}
}

// Run audits every target and returns the reports in target order. done, when
// not nil, is called once per target as soon as its report is ready; calls may
// come from several goroutines at once. Targets not started before ctx is
// cancelled are reported with the context error.
func (r *Runner) Run(ctx context.Context, targets []string, done func(PageReport)) []PageReport {
	reports := make([]PageReport, len(targets))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < min(r.Concurrency, len(targets)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				reports[i] = r.auditOne(ctx, targets[i])
				if done != nil {
					done(reports[i])
				}
			}
		}()
	}

	next := 0
feed:
	for ; next < len(targets); next++ {
		select {
		case jobs <- next:
		case <-ctx.Done():
			log.Printf("Audit interrupted, %d of %d targets not started", len(targets)-next, len(targets))
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	for i := next; i < len(targets); i++ {
		reports[i] = failedReport(targets[i], ctx.Err())
		if done != nil {
			done(reports[i])
		}
	}

	return reports
}

func (r *Runner) auditOne(ctx context.Context, target string) PageReport {
	log.Printf("Auditing %s", target)

	content, err := Load(ctx, r.Client, target)
	if err != nil {
		log.Printf("Audit of %s failed: %v", target, err)
		return failedReport(target, err)
	}

	report := Audit(target, content)
	log.Printf("Audit of %s finished: %d passed, %d warnings, %d failed",
		target, len(report.Passed), len(report.Warnings), len(report.Failed))
	return report
}
