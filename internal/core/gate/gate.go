// Package gate holds the per-request authorization decision that guards
// protected dashboard routes.
//
// A Gate is mounted once. Mounting starts a single evaluation of its check;
// the result is recorded unless the gate was unmounted first. An evaluation
// that outlives the gate timeout is Denied, so a hanging backend can never
// leave a caller waiting on Unknown.
package gate

import (
	"context"
	"errors"
	"sync"
	"time"
)

// DefaultTimeout bounds an evaluation when none is configured.
const DefaultTimeout = 10 * time.Second

var (
	// ErrTimeout is the cancellation cause of an evaluation that hit the
	// gate timeout.
	ErrTimeout = errors.New("gate: evaluation timed out")
	// ErrUnmounted is the cancellation cause used by Unmount.
	ErrUnmounted = errors.New("gate: unmounted")
)

// Check reports whether access is allowed. It must honour ctx.
type Check func(ctx context.Context) bool

type Gate struct {
	check   Check
	timeout time.Duration

	mu        sync.Mutex
	decision  Decision
	timedOut  bool
	mounted   bool
	unmounted bool
	cancel    context.CancelCauseFunc
	done      chan struct{}
	gone      chan struct{}
}

// New returns an unmounted gate. A non-positive timeout means DefaultTimeout.
func New(check Check, timeout time.Duration) *Gate {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Gate{
		check:   check,
		timeout: timeout,
		done:    make(chan struct{}),
		gone:    make(chan struct{}),
	}
}

// Mount starts the evaluation. Only the first call does anything; mounting
// an unmounted gate is a no-op.
func (g *Gate) Mount(ctx context.Context) {
	g.mu.Lock()
	if g.mounted || g.unmounted {
		g.mu.Unlock()
		return
	}
	g.mounted = true
	base, cancel := context.WithCancelCause(ctx)
	g.cancel = cancel
	g.mu.Unlock()

	go g.evaluate(base)
}

func (g *Gate) evaluate(base context.Context) {
	ctx, stop := context.WithTimeoutCause(base, g.timeout, ErrTimeout)
	defer stop()

	result := make(chan bool, 1)
	go func() { result <- g.check(ctx) }()

	select {
	case ok := <-result:
		if ctx.Err() != nil {
			// The check returned only because it was cancelled.
			if errors.Is(context.Cause(ctx), ErrTimeout) {
				g.resolveTimeout()
			} else {
				g.Unmount()
			}
			return
		}
		if ok {
			g.resolve(Granted)
		} else {
			g.resolve(Denied)
		}
	case <-ctx.Done():
		if errors.Is(context.Cause(ctx), ErrTimeout) {
			g.resolveTimeout()
			return
		}
		// The caller went away before the check finished.
		g.Unmount()
	}
}

func (g *Gate) resolve(d Decision) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.resolveLocked(d)
}

func (g *Gate) resolveTimeout() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.resolveLocked(Denied) {
		g.timedOut = true
	}
}

func (g *Gate) resolveLocked(d Decision) bool {
	if g.unmounted || g.decision.Final() {
		return false
	}
	g.decision = d
	close(g.done)
	return true
}

// Unmount abandons the gate. Any evaluation still running is cancelled and
// its result discarded. Safe to call more than once.
func (g *Gate) Unmount() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.unmounted {
		return
	}
	g.unmounted = true
	if g.cancel != nil {
		g.cancel(ErrUnmounted)
	}
	close(g.gone)
}

// Decision returns the current state without blocking.
func (g *Gate) Decision() Decision {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.decision
}

// TimedOut reports whether the gate was Denied because its evaluation hit
// the timeout rather than because the check said no.
func (g *Gate) TimedOut() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.timedOut
}

// isMounted reports whether the gate is mounted and not yet unmounted.
func (g *Gate) isMounted() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.mounted && !g.unmounted
}

// Wait blocks until the gate decides, is unmounted, or ctx ends, and returns
// the decision at that point (Unknown in the last two cases unless a
// decision had already been made).
func (g *Gate) Wait(ctx context.Context) Decision {
	select {
	case <-g.done:
	case <-g.gone:
	case <-ctx.Done():
	}
	return g.Decision()
}
