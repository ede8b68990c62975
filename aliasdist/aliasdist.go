package aliasdist

import (
	"math"
)

// Rand is the source of uniform randomness used for sampling.
// *math/rand/v2.Rand satisfies it. The package never owns or seeds
// global random state; callers inject a generator per draw site, which
// also makes sampling reproducible under a fixed seed.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// Distribution draws indices from a fixed discrete probability
// distribution in O(1) per draw, using Vose's alias method. It also
// carries the Shannon entropy of the distribution, computed once at
// construction.
//
// A Distribution is immutable after New and safe for concurrent use as
// long as each goroutine uses its own Rand.
type Distribution struct {
	probTable  []float64
	aliasTable []int
	entropy    float64
}

// New builds a Distribution from a slice of non-negative finite weights.
// The weights do not need to be normalized.
//
// Returns ErrInvalidWeight if any weight is negative, NaN, or infinite,
// and ErrNullDistribution if the slice is empty or sums to zero.
func New(weights []float64) (*Distribution, error) {
	var total float64
	for _, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, ErrInvalidWeight
		}
		total += w
	}

	if len(weights) == 0 || total == 0 {
		return nil, ErrNullDistribution
	}

	size := len(weights)
	n := float64(size)

	// Probability table entries are scaled by size so that a uniform
	// distribution sits exactly at 1.0. Entropy is accumulated over the
	// unscaled probabilities; zero weights contribute nothing.
	probTable := make([]float64, 0, size)
	var entropy float64
	for _, w := range weights {
		prob := w / total
		if prob > 0 {
			entropy -= prob * math.Log2(prob)
		}
		probTable = append(probTable, prob*n)
	}

	// Identity aliases cover the entries left on a worklist once the
	// other one empties: they keep effectively full buckets.
	aliasTable := make([]int, size)
	for i := range aliasTable {
		aliasTable[i] = i
	}

	overfull := make([]int, 0, size)
	underfull := make([]int, 0, size)
	for i, prob := range probTable {
		if prob < 1.0 {
			underfull = append(underfull, i)
		} else {
			overfull = append(overfull, i)
		}
	}

	// Vose's construction: each underfull bucket takes an alias from an
	// overfull one, which donates exactly the missing probability mass.
	for len(overfull) > 0 && len(underfull) > 0 {
		i := underfull[len(underfull)-1]
		underfull = underfull[:len(underfull)-1]
		j := overfull[len(overfull)-1]
		overfull = overfull[:len(overfull)-1]

		aliasTable[i] = j
		probTable[j] += probTable[i] - 1.0
		if probTable[j] < 1.0 {
			underfull = append(underfull, j)
		} else {
			overfull = append(overfull, j)
		}
	}

	return &Distribution{
		probTable:  probTable,
		aliasTable: aliasTable,
		entropy:    entropy,
	}, nil
}

// Choice samples one index according to the weights passed to New.
// It draws one uniform index and one uniform float from rng.
func (d *Distribution) Choice(rng Rand) int {
	i := rng.IntN(len(d.probTable))
	y := rng.Float64()

	if d.probTable[i] >= y {
		return i
	}

	return d.aliasTable[i]
}

// Entropy returns the Shannon entropy of the distribution in bits.
func (d *Distribution) Entropy() float64 {
	return d.entropy
}

// Len returns the number of outcomes in the distribution.
func (d *Distribution) Len() int {
	return len(d.probTable)
}
