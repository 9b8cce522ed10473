package core

import (
	"sync"
	"sync/atomic"
	"time"
)

// DefaultProgressInterval is how often progress is reported
const DefaultProgressInterval = 50 * time.Millisecond

// ProgressReporter polls an atomic work counter from a background goroutine
// and logs the completion percentage at a fixed interval. It is purely informational.
type ProgressReporter struct {
	label    string
	total    int64
	done     atomic.Int64
	interval time.Duration
	logger   Logger
	stop     chan struct{}
	wg       sync.WaitGroup
}

// NewProgressReporter creates a reporter for total units of work
func NewProgressReporter(label string, total int64, interval time.Duration, logger Logger) *ProgressReporter {
	if interval <= 0 {
		interval = DefaultProgressInterval
	}
	if logger == nil {
		logger = NopLogger{}
	}
	return &ProgressReporter{
		label:    label,
		total:    total,
		interval: interval,
		logger:   logger,
		stop:     make(chan struct{}),
	}
}

// Start launches the polling goroutine
func (p *ProgressReporter) Start() {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-p.stop:
				return
			case <-ticker.C:
				p.report()
			}
		}
	}()
}

// Add records n completed units
func (p *ProgressReporter) Add(n int64) {
	p.done.Add(n)
}

// Done returns the number of completed units
func (p *ProgressReporter) Done() int64 {
	return p.done.Load()
}

// Percent returns completion in [0, 100]
func (p *ProgressReporter) Percent() float64 {
	if p.total <= 0 {
		return 100
	}
	return min(100, float64(p.done.Load())*100/float64(p.total))
}

// Stop halts polling and logs the final figure
func (p *ProgressReporter) Stop() {
	close(p.stop)
	p.wg.Wait()
	p.report()
}

func (p *ProgressReporter) report() {
	p.logger.Printf("%s: %.2f%%\n", p.label, p.Percent())
}
