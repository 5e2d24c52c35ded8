package io

import (
	"iter"
	"slices"
)

// Queue is a FIFO of values with an optional capacity.
// Consumed values are reclaimed once they make up half of the buffer.
type Queue struct {
	Capacity int // Maximum queued values, or 0 for unbounded.

	ReadIndex int
	Data      []int64
}

var _ Channel = (*Queue)(nil)

// Rewind empties the queue.
func (q *Queue) Rewind() {
	q.ReadIndex = 0
	q.Data = q.Data[:0]
}

// Len returns the number of values waiting to be received.
func (q *Queue) Len() int {
	return len(q.Data) - q.ReadIndex
}

// Values returns the waiting values without consuming them.
func (q *Queue) Values() []int64 {
	return slices.Clone(q.Data[q.ReadIndex:])
}

// Drain consumes and returns all waiting values.
func (q *Queue) Drain() (values []int64) {
	values = q.Values()
	q.Rewind()
	return
}

// Receive returns an iterator that yields values until the queue is empty.
func (q *Queue) Receive() iter.Seq[int64] {
	return func(yield func(value int64) bool) {
		for q.ReadIndex < len(q.Data) {
			value := q.Data[q.ReadIndex]
			q.ReadIndex++
			q.compact()
			if !yield(value) {
				return
			}
		}
	}
}

// Send appends a value to the queue.
// Returns ErrChannelFull if the queue has reached capacity.
func (q *Queue) Send(value int64) (err error) {
	if q.Capacity > 0 && q.Len() >= q.Capacity {
		err = ErrChannelFull
		return
	}

	q.Data = append(q.Data, value)

	return
}

func (q *Queue) compact() {
	if q.ReadIndex == len(q.Data) {
		q.Rewind()
		return
	}

	if q.ReadIndex*2 >= len(q.Data) {
		n := copy(q.Data, q.Data[q.ReadIndex:])
		q.Data = q.Data[:n]
		q.ReadIndex = 0
	}
}
