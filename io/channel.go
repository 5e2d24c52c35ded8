// Package io provides the value channels that connect Intcode machines to
// each other and to the outside world. A Queue is the conduit for one edge of
// an amplifier network, and a Tape adapts text streams of integers.
package io

import (
	"iter"
)

// Channel defines the interface for all value channels.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Receive returns an iterator that yields values from the channel.
	// Each value is consumed before it is yielded, so a consumer that
	// stops after one value takes exactly one.
	Receive() iter.Seq[int64]
	// Send writes a single value to the channel.
	Send(value int64) error
}
