package internal

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeqConcat(t *testing.T) {
	assert := assert.New(t)

	seq := IterSeqConcat(slices.Values([]int{1, 2}), slices.Values([]int{}), slices.Values([]int{3}))
	assert.Equal([]int{1, 2, 3}, slices.Collect(seq))

	var first []int
	for v := range seq {
		first = append(first, v)
		if len(first) == 2 {
			break
		}
	}
	assert.Equal([]int{1, 2}, first)
}

func TestPermutations(t *testing.T) {
	assert := assert.New(t)

	items := []int{0, 1, 2, 3, 4}
	seen := map[string]bool{}
	for perm := range Permutations(items) {
		assert.Len(perm, 5)
		sorted := slices.Sorted(slices.Values(perm))
		assert.Equal(items, sorted)
		seen[fmt.Sprint(perm)] = true
	}
	assert.Len(seen, 120)
	assert.Equal([]int{0, 1, 2, 3, 4}, items)

	assert.Equal([][]int{{}}, slices.Collect(Permutations([]int{})))
	assert.Equal([][]int{{1, 2}, {2, 1}}, slices.Collect(Permutations([]int{1, 2})))

	n := 0
	for range Permutations(items) {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(3, n)
}
