package progress

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Segments is the number of visual segments a Bar renders.
const Segments = 10

// Sentinel errors for bar usage.
var (
	// ErrOverflow indicates more increments than the declared total.
	ErrOverflow = errors.New("progress: increments exceeded total")

	// ErrBadTotal indicates a non-positive step total.
	ErrBadTotal = errors.New("progress: total must be positive")
)

// Bar is a Segments-wide console progress bar over a fixed number of
// steps. A Bar redraws only when progress crosses a segment threshold.
type Bar struct {
	mu        sync.Mutex
	w         io.Writer
	total     int
	current   int
	completed int // segments already drawn as filled
}

// Option configures a Bar.
type Option func(*Bar)

// WithWriter redirects the bar's output; the default is os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(b *Bar) {
		if w != nil {
			b.w = w
		}
	}
}

// New builds a Bar over total steps and draws its empty state.
func New(total int, opts ...Option) (*Bar, error) {
	if total <= 0 {
		return nil, ErrBadTotal
	}
	b := &Bar{w: os.Stdout, total: total}
	for _, opt := range opts {
		opt(b)
	}
	b.draw()

	return b, nil
}

// Increment records one completed step, redrawing when a segment
// threshold is crossed. Safe for concurrent use.
func (b *Bar) Increment() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.current >= b.total {
		return ErrOverflow
	}
	b.current++

	for b.completed < Segments && b.current*Segments >= (b.completed+1)*b.total {
		b.completed++
		b.draw()
	}

	return nil
}

// Set jumps the bar to done completed steps, for callers that receive
// absolute progress counts instead of unit ticks.
func (b *Bar) Set(done int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if done > b.total {
		return ErrOverflow
	}
	if done > b.current {
		b.current = done
	}

	for b.completed < Segments && b.current*Segments >= (b.completed+1)*b.total {
		b.completed++
		b.draw()
	}

	return nil
}

// draw renders the current bar state. Callers hold b.mu.
func (b *Bar) draw() {
	fmt.Fprintf(b.w, "[%s%s] (%d/%d)\n",
		strings.Repeat("*", b.completed),
		strings.Repeat(" ", Segments-b.completed),
		b.current, b.total)
}
