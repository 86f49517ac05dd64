package util

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gosuri/uilive"
)

// ProgressPrinter repaints a status line on the terminal while a long
// run is in progress. The run goroutine updates the status with Set;
// the printer flushes it at a fixed frequency until stopped.
type ProgressPrinter struct {
	frequency time.Duration
	doneCh    chan struct{}

	writer *uilive.Writer

	mu     sync.Mutex
	status string
}

func NewProgressPrinter(frequency time.Duration) *ProgressPrinter {
	return &ProgressPrinter{
		frequency: frequency,
		doneCh:    make(chan struct{}),
		writer:    uilive.New(),
	}
}

func (p *ProgressPrinter) Set(status string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.status = status
}

func (p *ProgressPrinter) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-p.doneCh:
				p.print()
				p.writer.Stop()
				return
			case <-ctx.Done():
				p.writer.Stop()
				return
			case <-time.After(p.frequency):
				p.print()
			}
		}
	}()
}

func (p *ProgressPrinter) Stop() {
	close(p.doneCh)
}

func (p *ProgressPrinter) print() {
	p.mu.Lock()
	status := p.status
	p.mu.Unlock()
	fmt.Fprintf(p.writer, "%s\n", status)
	p.writer.Flush()
}
