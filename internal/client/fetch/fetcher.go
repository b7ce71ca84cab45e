// Package fetch implements the remote-data access pattern used by views:
// each feed tracks its own loading/error/result state, refetches when its
// parameters change, and guarantees that a stale in-flight response never
// overwrites the result of a newer request.
package fetch

import (
	"context"
	"sync"
)

// Func is an asynchronous read operation parametrized by P.
type Func[P, T any] func(ctx context.Context, params P) (T, error)

// State is a point-in-time snapshot of a fetcher.
// Err is a displayable message, empty when the last fetch succeeded.
type State[T any] struct {
	Data    T
	Loading bool
	Err     string
}

// Fetcher runs a read operation and tracks its state. Each call to Fetch
// supersedes any fetch still in flight: a sequence number taken at issue
// time gates the commit, so results are only applied for the most recently
// requested parameter tuple.
//
// The read path never returns an error; failures are recorded in the state
// with the thrown message (or the fallback when empty) and the previous
// data is kept, stale-but-visible.
type Fetcher[P, T any] struct {
	mu       sync.Mutex
	fn       Func[P, T]
	fallback string

	seq        uint64
	started    bool
	lastParams P
	data       T
	loading    bool
	errMsg     string
}

// NewFetcher wraps fn. fallback is the generic error message recorded when
// a failure carries no text of its own.
func NewFetcher[P, T any](fn Func[P, T], fallback string) *Fetcher[P, T] {
	return &Fetcher[P, T]{fn: fn, fallback: fallback}
}

// Fetch issues a new request for params, marking the state loading and
// clearing any previous error. It blocks until the operation resolves; the
// result is committed only if no newer Fetch was issued meanwhile.
func (f *Fetcher[P, T]) Fetch(ctx context.Context, params P) {
	f.mu.Lock()
	f.seq++
	seq := f.seq
	f.started = true
	f.lastParams = params
	f.loading = true
	f.errMsg = ""
	f.mu.Unlock()

	data, err := f.fn(ctx, params)

	f.mu.Lock()
	defer f.mu.Unlock()

	if seq != f.seq {
		// Superseded by a newer request; discard.
		return
	}

	f.loading = false
	if err != nil {
		f.errMsg = errText(err, f.fallback)
		return
	}
	f.data = data
}

// Refetch repeats the most recent request unconditionally, with the same
// parameters. It is a no-op before the first Fetch.
func (f *Fetcher[P, T]) Refetch(ctx context.Context) {
	f.mu.Lock()
	if !f.started {
		f.mu.Unlock()
		return
	}
	params := f.lastParams
	f.mu.Unlock()

	f.Fetch(ctx, params)
}

// Snapshot returns the current state.
func (f *Fetcher[P, T]) Snapshot() State[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return State[T]{Data: f.data, Loading: f.loading, Err: f.errMsg}
}

// Params returns the last-used parameters and whether a fetch was issued.
func (f *Fetcher[P, T]) Params() (P, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastParams, f.started
}

// update mutates the committed data in place, for write operations that
// fold a confirmed server resource into an existing result set.
func (f *Fetcher[P, T]) update(mutate func(T) T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data = mutate(f.data)
}

// setErr records a displayable error without touching data or loading.
func (f *Fetcher[P, T]) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errMsg = errText(err, f.fallback)
}

func errText(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}
