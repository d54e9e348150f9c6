// Package testutil holds helpers shared by package tests.
package testutil

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
)

// NopLogger returns a logger that discards all output.
func NopLogger() *log.Logger {
	return log.New(io.Discard)
}

// SeqRand returns queued values from Intn, in order. Once the queue is
// drained it falls back to a fixed-seed generator so loops that keep
// drawing still terminate.
type SeqRand struct {
	queue    []int
	next     int
	fallback *rand.Rand
	calls    int
}

// NewSeqRand creates a SeqRand with the given values queued.
func NewSeqRand(values ...int) *SeqRand {
	return &SeqRand{
		queue:    values,
		fallback: rand.New(rand.NewSource(1)),
	}
}

// Queue appends values to the queue.
func (r *SeqRand) Queue(values ...int) {
	r.queue = append(r.queue, values...)
}

// Intn returns the next queued value, or a pseudo-random value when the
// queue is empty. Queued values are not range-checked.
func (r *SeqRand) Intn(n int) int {
	r.calls++
	if r.next < len(r.queue) {
		v := r.queue[r.next]
		r.next++
		return v
	}
	return r.fallback.Intn(n)
}

// Pending returns how many queued values are left.
func (r *SeqRand) Pending() int {
	return len(r.queue) - r.next
}

// Calls returns how many times Intn was called.
func (r *SeqRand) Calls() int {
	return r.calls
}
