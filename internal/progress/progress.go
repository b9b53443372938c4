// Package progress provides an advisory batch progress reporter that is
// injected into long-running operations. Reporting never affects ordering or
// results; callers that want silence pass Nop.
package progress

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// Reporter receives advisory progress events from batch operations.
type Reporter interface {
	// Start announces a task and its total unit count.
	Start(task string, total int)
	// Tick records completion of one unit. Safe for concurrent use.
	Tick()
	// Done announces completion of the task.
	Done(task string)
}

type nopReporter struct{}

func (nopReporter) Start(string, int) {}
func (nopReporter) Tick()             {}
func (nopReporter) Done(string)       {}

// Nop returns a reporter that discards all events.
func Nop() Reporter {
	return nopReporter{}
}

type zapReporter struct {
	log   *zap.Logger
	every int64
	task  string
	total int64
	count int64
}

// NewZapReporter returns a reporter that logs a progress line every `every`
// ticks.
func NewZapReporter(log *zap.Logger, every int) Reporter {
	if every < 1 {
		every = 1000
	}
	return &zapReporter{log: log, every: int64(every)}
}

func (r *zapReporter) Start(task string, total int) {
	r.task = task
	atomic.StoreInt64(&r.total, int64(total))
	atomic.StoreInt64(&r.count, 0)
	r.log.Info("starting", zap.String("task", task), zap.Int("total", total))
}

func (r *zapReporter) Tick() {
	n := atomic.AddInt64(&r.count, 1)
	if n%r.every == 0 {
		r.log.Info("progress",
			zap.String("task", r.task),
			zap.Int64("completed", n),
			zap.Int64("total", atomic.LoadInt64(&r.total)),
		)
	}
}

func (r *zapReporter) Done(task string) {
	r.log.Info("done",
		zap.String("task", task),
		zap.Int64("completed", atomic.LoadInt64(&r.count)),
	)
}
