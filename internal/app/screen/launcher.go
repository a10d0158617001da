// Package screen holds the state behind each user-facing screen. A holder
// keeps an immutable snapshot in an observe.Value, replaces it as operations
// complete and exposes it through State and Watch. Each operation has a
// Launch variant that runs it on the holder's Launcher and returns at once;
// Wait and Close block until launched operations finish. Following a
// preference also runs on the Launcher and ends with Close.
package screen

import (
	"context"
	"errors"
	"log/slog"
	"runtime/debug"
	"sync"
)

// Launcher owns the goroutines of one screen. Long-lived tasks started with
// Go get a context that keeps the values of the parent and is canceled only
// by Close. One-shot operations started with Launch run on a context that is
// never canceled, so a request in flight always completes.
type Launcher struct {
	base   context.Context
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup // every task
	ops    sync.WaitGroup // Launch only
	logger *slog.Logger

	mu   sync.Mutex
	errs []error
}

// NewLauncher creates a Launcher scoped to parent's values.
func NewLauncher(parent context.Context, logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	base := context.WithoutCancel(parent)
	ctx, cancel := context.WithCancel(base)
	return &Launcher{base: base, ctx: ctx, cancel: cancel, logger: logger}
}

// Go runs fn in a new goroutine until it returns or Close is called. A panic
// in fn is logged and swallowed.
func (l *Launcher) Go(name string, fn func(ctx context.Context)) {
	l.wg.Go(func() {
		defer l.recoverTask(name)
		fn(l.ctx)
	})
}

// Launch runs op in a new goroutine and returns at once. Its error is kept
// until the next Wait or Close.
func (l *Launcher) Launch(name string, op func(ctx context.Context) error) {
	l.ops.Add(1)
	l.wg.Go(func() {
		defer l.ops.Done()
		defer l.recoverTask(name)

		if err := op(l.base); err != nil {
			l.mu.Lock()
			l.errs = append(l.errs, err)
			l.mu.Unlock()
		}
	})
}

// Wait blocks until every launched operation has returned and reports their
// errors joined, in completion order.
func (l *Launcher) Wait() error {
	l.ops.Wait()

	l.mu.Lock()
	defer l.mu.Unlock()
	err := errors.Join(l.errs...)
	l.errs = nil
	return err
}

// Close cancels the long-lived tasks, waits for every task and returns what
// Wait would.
func (l *Launcher) Close() error {
	l.cancel()
	l.wg.Wait()
	return l.Wait()
}

func (l *Launcher) recoverTask(name string) {
	if p := recover(); p != nil {
		l.logger.ErrorContext(l.base, "screen task panicked",
			slog.String("task", name),
			slog.Any("panic", p),
			slog.String("stack", string(debug.Stack())),
		)
	}
}

// follow subscribes within the launcher scope, applies the current value
// before returning and every later one from a background task until the
// subscription closes.
func follow[T any](l *Launcher, name string, subscribe func(context.Context) <-chan T, apply func(T)) {
	ch := subscribe(l.ctx)
	if v, ok := <-ch; ok {
		apply(v)
	}

	l.Go(name, func(ctx context.Context) {
		for {
			select {
			case v, ok := <-ch:
				if !ok {
					return
				}
				apply(v)
			case <-ctx.Done():
				return
			}
		}
	})
}

// errText renders err for display; nil becomes "".
func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
