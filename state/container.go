package state

import (
	"context"
	"sync"
	"time"
)

// Status is the request-lifecycle state of a domain container
type Status int

// Lifecycle states, in transition order
const (
	StatusIdle Status = iota
	StatusLoading
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// FailurePolicy decides what happens to the payload when a fetch fails
type FailurePolicy int

const (
	// RetainOnFailure keeps the last successful payload visible
	RetainOnFailure FailurePolicy = iota
	// ClearOnFailure blanks the payload alongside the error
	ClearOnFailure
)

// Container tracks one domain's fetch lifecycle: the latest payload, a
// tri-state status, and the current error message. Every mutation goes
// through the three lifecycle transitions plus Reset. A monotonic generation
// counter makes the last *issued* fetch win: resolutions carrying a stale
// generation are dropped instead of overwriting fresher data.
type Container[T any] struct {
	mu          sync.Mutex
	status      Status
	payload     *T
	errMessage  string
	lastUpdated time.Time
	gen         uint64
	onFailure   FailurePolicy
}

// NewContainer creates an idle container with the given failure policy
func NewContainer[T any](onFailure FailurePolicy) *Container[T] {
	return &Container[T]{onFailure: onFailure}
}

// View is a point-in-time copy of a container's observable state
type View[T any] struct {
	Status      Status
	Payload     *T
	Error       string
	LastUpdated time.Time
}

// Begin transitions into loading, clears the prior error, and returns the
// generation token the eventual resolution must present. Re-entrant from any
// settled state, used by refresh buttons, pagination, and polling.
func (c *Container[T]) Begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = StatusLoading
	c.errMessage = ""
	c.gen++
	return c.gen
}

// Succeed stores the payload for the given generation. A stale generation is
// ignored and reported false.
func (c *Container[T]) Succeed(gen uint64, payload *T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return false
	}
	c.status = StatusSucceeded
	c.payload = payload
	c.errMessage = ""
	c.lastUpdated = time.Now()
	return true
}

// Fail records the error for the given generation, handling the payload per
// the container's failure policy. A stale generation is ignored.
func (c *Container[T]) Fail(gen uint64, message string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return false
	}
	c.status = StatusFailed
	c.errMessage = message
	if c.onFailure == ClearOnFailure {
		c.payload = nil
		c.lastUpdated = time.Time{}
	}
	return true
}

// Reset returns the container to idle and drops payload and error. Resolutions
// of fetches issued before the reset are discarded.
func (c *Container[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = StatusIdle
	c.payload = nil
	c.errMessage = ""
	c.lastUpdated = time.Time{}
	c.gen++
}

// Update applies a local write to the payload outside the fetch lifecycle,
// leaving status and error untouched. fn runs under the container's lock so
// the read-modify-write is atomic with respect to settling fetches. Used for
// local writes such as appending a freshly created record to a loaded list.
func (c *Container[T]) Update(fn func(current *T) *T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.payload = fn(c.payload)
}

// ClearError drops the error message without touching status or payload
func (c *Container[T]) ClearError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errMessage = ""
}

// Snapshot returns the current observable state
func (c *Container[T]) Snapshot() View[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return View[T]{
		Status:      c.status,
		Payload:     c.payload,
		Error:       c.errMessage,
		LastUpdated: c.lastUpdated,
	}
}

// Fetch runs one full lifecycle: Begin, invoke fn, settle with the result.
// The returned error is fn's error so callers can branch on it, the container
// reflects it either way.
func (c *Container[T]) Fetch(ctx context.Context, fn func(context.Context) (*T, error)) error {
	gen := c.Begin()
	payload, err := fn(ctx)
	if err != nil {
		c.Fail(gen, err.Error())
		return err
	}
	c.Succeed(gen, payload)
	return nil
}
