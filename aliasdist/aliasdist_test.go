package aliasdist

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("empty weights", func(t *testing.T) {
		dist, err := New(nil)
		assert.Nil(t, dist)
		assert.ErrorIs(t, err, ErrNullDistribution)
	})

	t.Run("all zero weights", func(t *testing.T) {
		dist, err := New([]float64{0.0, 0.0, 0.0})
		assert.Nil(t, dist)
		assert.ErrorIs(t, err, ErrNullDistribution)
	})

	t.Run("negative weight", func(t *testing.T) {
		dist, err := New([]float64{3.2, -0.3, 4.5})
		assert.Nil(t, dist)
		assert.ErrorIs(t, err, ErrInvalidWeight)
	})

	t.Run("nan weight", func(t *testing.T) {
		dist, err := New([]float64{3.2, math.NaN(), 4.5})
		assert.Nil(t, dist)
		assert.ErrorIs(t, err, ErrInvalidWeight)
	})

	t.Run("infinite weight", func(t *testing.T) {
		dist, err := New([]float64{3.2, math.Inf(1), 4.5})
		assert.Nil(t, dist)
		assert.ErrorIs(t, err, ErrInvalidWeight)
	})

	t.Run("valid weights", func(t *testing.T) {
		dist, err := New([]float64{1.0, 2.0, 3.0, 4.0})
		require.NoError(t, err)
		assert.Equal(t, 4, dist.Len())
		assert.Len(t, dist.probTable, 4)
		assert.Len(t, dist.aliasTable, 4)
	})

	t.Run("scaled probability table stays in range", func(t *testing.T) {
		dist, err := New([]float64{0.1, 0.2, 0.3, 0.4, 5.0})
		require.NoError(t, err)
		for i, prob := range dist.probTable {
			assert.GreaterOrEqual(t, prob, 0.0, "bucket %d", i)
			assert.LessOrEqual(t, prob, float64(dist.Len()), "bucket %d", i)
		}
	})
}

func TestEntropy(t *testing.T) {
	t.Run("uniform pair", func(t *testing.T) {
		dist, err := New([]float64{1.0, 1.0})
		require.NoError(t, err)
		assert.InDelta(t, 1.0, dist.Entropy(), 1e-6)
	})

	t.Run("mixed weights", func(t *testing.T) {
		dist, err := New([]float64{0.5, 0.5, 1.0, 2.0})
		require.NoError(t, err)
		assert.InDelta(t, 1.75, dist.Entropy(), 1e-6)
	})

	t.Run("single outcome has no entropy", func(t *testing.T) {
		dist, err := New([]float64{42.0})
		require.NoError(t, err)
		assert.Equal(t, 0.0, dist.Entropy())
	})

	t.Run("zero weights contribute nothing", func(t *testing.T) {
		dist, err := New([]float64{1.0, 0.0, 1.0})
		require.NoError(t, err)
		assert.InDelta(t, 1.0, dist.Entropy(), 1e-6)
	})

	t.Run("uniform over four", func(t *testing.T) {
		dist, err := New([]float64{2.5, 2.5, 2.5, 2.5})
		require.NoError(t, err)
		assert.InDelta(t, 2.0, dist.Entropy(), 1e-6)
	})
}

func TestChoice(t *testing.T) {
	t.Run("reproduces the input distribution", func(t *testing.T) {
		weights := []float64{1.0, 2.0, 3.0, 4.0}
		dist, err := New(weights)
		require.NoError(t, err)

		rng := rand.New(rand.NewPCG(1, 2))

		const draws = 100000
		counts := make([]int, len(weights))
		for range draws {
			idx := dist.Choice(rng)
			require.GreaterOrEqual(t, idx, 0)
			require.Less(t, idx, len(weights))
			counts[idx]++
		}

		for i, w := range weights {
			expected := w / 10.0
			observed := float64(counts[i]) / draws
			assert.InDelta(t, expected, observed, 1e-2, "bucket %d", i)
		}
	})

	t.Run("single outcome", func(t *testing.T) {
		dist, err := New([]float64{7.0})
		require.NoError(t, err)

		rng := rand.New(rand.NewPCG(3, 4))
		for range 100 {
			assert.Equal(t, 0, dist.Choice(rng))
		}
	})

	t.Run("zero weight bucket is never drawn", func(t *testing.T) {
		dist, err := New([]float64{0.0, 1.0})
		require.NoError(t, err)

		rng := rand.New(rand.NewPCG(5, 6))
		for range 1000 {
			assert.Equal(t, 1, dist.Choice(rng))
		}
	})

	t.Run("deterministic under a fixed seed", func(t *testing.T) {
		dist, err := New([]float64{1.0, 2.0, 3.0})
		require.NoError(t, err)

		first := make([]int, 0, 50)
		rng := rand.New(rand.NewPCG(7, 8))
		for range 50 {
			first = append(first, dist.Choice(rng))
		}

		second := make([]int, 0, 50)
		rng = rand.New(rand.NewPCG(7, 8))
		for range 50 {
			second = append(second, dist.Choice(rng))
		}

		assert.Equal(t, first, second)
	})
}

func BenchmarkNew(b *testing.B) {
	weights := make([]float64, 256)
	for i := range weights {
		weights[i] = float64(i + 1)
	}

	b.ReportAllocs()
	for b.Loop() {
		if _, err := New(weights); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkChoice(b *testing.B) {
	weights := make([]float64, 256)
	for i := range weights {
		weights[i] = float64(i + 1)
	}

	dist, err := New(weights)
	if err != nil {
		b.Fatal(err)
	}

	rng := rand.New(rand.NewPCG(1, 2))

	b.ReportAllocs()
	for b.Loop() {
		dist.Choice(rng)
	}
}

func FuzzNew(f *testing.F) {
	f.Add(1.0, 1.0, 1.0)
	f.Add(0.5, 0.5, 2.0)
	f.Add(0.0, 0.0, 0.0)
	f.Add(-1.0, 2.0, 3.0)

	f.Fuzz(func(t *testing.T, w1, w2, w3 float64) {
		dist, err := New([]float64{w1, w2, w3})
		if err != nil {
			return
		}

		if dist.Entropy() < 0 || dist.Entropy() > math.Log2(3)+1e-9 {
			t.Errorf("entropy out of range: %f", dist.Entropy())
		}

		rng := rand.New(rand.NewPCG(1, 2))
		for range 100 {
			idx := dist.Choice(rng)
			if idx < 0 || idx >= 3 {
				t.Errorf("choice out of range: %d", idx)
			}
		}
	})
}
