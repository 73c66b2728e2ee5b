// Package profiling provides opt-in CPU, memory, and wall-clock profiling for
// workbench commands. The hierarchical timer costs nothing while disabled, so
// spans can stay in place permanently.
package profiling

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Stopper ends a timed span, typically via defer.
type Stopper interface {
	Stop()
}

// span is one timed operation. All spans are created and mutated under
// their profiler's lock, so child order is call order.
type span struct {
	name     string
	start    time.Time
	duration time.Duration
	children []*span
	owner    *Profiler
}

// Stop records the span's duration and pops it off its profiler's stack.
func (s *span) Stop() {
	s.duration = time.Since(s.start)
	s.owner.endSpan(s)
}

// Profiler collects nested timing spans for one run. The enabled flag
// is atomic so Start can bail out without touching the lock.
type Profiler struct {
	enabled atomic.Bool
	mu      sync.Mutex
	root    *span
	stack   []*span
}

var defaultProfiler = &Profiler{}

// Enable turns on the global profiler. Spans started before Enable are lost.
func Enable() {
	p := defaultProfiler
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.enabled.Load() {
		return
	}
	p.root = &span{name: "root", start: time.Now(), owner: p}
	p.stack = []*span{p.root}
	p.enabled.Store(true)
}

// Start begins a named span under the currently open one. The returned
// Stopper must be called to close the span; when profiling is disabled it is
// a no-op.
func Start(name string) Stopper {
	if !defaultProfiler.enabled.Load() {
		return noopStopper{}
	}
	return defaultProfiler.startSpan(name)
}

func (p *Profiler) startSpan(name string) Stopper {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := &span{name: name, start: time.Now(), owner: p}
	parent := p.stack[len(p.stack)-1]
	parent.children = append(parent.children, s)
	p.stack = append(p.stack, s)
	return s
}

func (p *Profiler) endSpan(s *span) {
	p.mu.Lock()
	defer p.mu.Unlock()

	// Pop back to the matching span. A second Stop on the same span is a
	// no-op, and the root only closes through Summarize.
	for i := len(p.stack) - 1; i > 0; i-- {
		if p.stack[i] == s {
			p.stack = p.stack[:i]
			return
		}
	}
}

// Summarize writes the span tree with durations and percentages of the total
// run time. It does nothing when profiling is disabled.
func Summarize(w io.Writer) {
	p := defaultProfiler
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled.Load() {
		return
	}
	if p.root.duration == 0 {
		p.root.duration = time.Since(p.root.start)
	}

	fmt.Fprintln(w, "\n--- Timing Profile ---")
	for _, child := range p.root.children {
		child.write(w, 1, p.root.duration)
	}
	fmt.Fprintln(w, "----------------------")
}

func (s *span) write(w io.Writer, depth int, total time.Duration) {
	pct := 0.0
	if total > 0 {
		pct = float64(s.duration) / float64(total) * 100
	}
	fmt.Fprintf(w, "%s- %s (%v, %.1f%%)\n",
		strings.Repeat("  ", depth), s.name, s.duration.Round(100*time.Microsecond), pct)

	for _, child := range s.children {
		child.write(w, depth+1, total)
	}
}

type noopStopper struct{}

func (noopStopper) Stop() {}
