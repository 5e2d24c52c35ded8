package internal

import (
	"iter"
	"slices"
)

// IterSeqConcat concatenates multiple iterators into a single iterator sequence.
func IterSeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// Permutations yields every ordering of items, using Heap's algorithm.
// Each yielded slice is a fresh copy owned by the consumer.
func Permutations[T any](items []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		work := slices.Clone(items)
		count := make([]int, len(work))

		if !yield(slices.Clone(work)) {
			return
		}

		for i := 0; i < len(work); {
			if count[i] < i {
				if i%2 == 0 {
					work[0], work[i] = work[i], work[0]
				} else {
					work[count[i]], work[i] = work[i], work[count[i]]
				}
				if !yield(slices.Clone(work)) {
					return
				}
				count[i]++
				i = 0
			} else {
				count[i] = 0
				i++
			}
		}
	}
}
