// Package nonce generates the per-request nonce of private calls.
package nonce

import (
	"strconv"
	"sync/atomic"
	"time"
)

// Source yields nonces for private requests.
type Source interface {
	Next() int64
}

// Clock returns the wall clock in milliseconds on every call. Two calls within the same
// millisecond return the same value.
type Clock struct {
	Now func() time.Time
}

// Next returns the current time in milliseconds since the epoch.
func (c Clock) Next() int64 {
	if c.Now != nil {
		return c.Now().UnixMilli()
	}
	return time.Now().UnixMilli()
}

// Monotonic returns wall-clock milliseconds, bumped by one whenever the clock has not
// advanced past the previous value, so every call returns a strictly greater nonce.
// The zero value is ready to use and effectively starts at the current time.
type Monotonic struct {
	last atomic.Int64
	now  func() time.Time
}

// NewMonotonic creates a Monotonic source reading time from now. A nil now uses time.Now.
func NewMonotonic(now func() time.Time) *Monotonic {
	return &Monotonic{now: now}
}

// Next returns max(now, last+1) and records it.
func (m *Monotonic) Next() int64 {
	for {
		last := m.last.Load()
		next := m.clock()
		if next <= last {
			next = last + 1
		}
		if m.last.CompareAndSwap(last, next) {
			return next
		}
	}
}

// Last returns the most recently issued nonce, or zero.
func (m *Monotonic) Last() int64 {
	return m.last.Load()
}

func (m *Monotonic) clock() int64 {
	if m.now != nil {
		return m.now().UnixMilli()
	}
	return time.Now().UnixMilli()
}

// Default is shared by every client of the process that does not configure its own source.
// It lives for the whole process and needs no teardown.
var Default Source = &Monotonic{}

// Format renders a nonce the way it is sent on the wire.
func Format(n int64) string {
	return strconv.FormatInt(n, 10)
}
