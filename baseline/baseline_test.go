package baseline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var nan = math.NaN()

func TestFirst(t *testing.T) {
	v, ok := First([]float64{nan, math.Inf(1), 4, 5})
	assert.True(t, ok)
	assert.Equal(t, 4.0, v)

	_, ok = First([]float64{nan, nan})
	assert.False(t, ok)

	_, ok = First(nil)
	assert.False(t, ok)
}

func TestRebaseStartsAtZero(t *testing.T) {
	result := Rebase([]float64{10, 20, 30})

	assert.Equal(t, []float64{0, 10, 20}, result)
}

func TestRebasePassesInvalidThrough(t *testing.T) {
	result := Rebase([]float64{nan, 5, nan, 8})

	assert.True(t, math.IsNaN(result[0]))
	assert.Equal(t, 0.0, result[1])
	assert.True(t, math.IsNaN(result[2]))
	assert.Equal(t, 3.0, result[3])
}

func TestForTraceSubstitutesZero(t *testing.T) {
	result := ForTrace([]float64{nan, 5, nan, 8})

	assert.Equal(t, []float64{0, 0, 0, 3}, result)
}

func TestNoValidNumberReturnsInput(t *testing.T) {
	in := []float64{nan, nan}

	for name, fn := range map[string]func([]float64) []float64{"Rebase": Rebase, "ForTrace": ForTrace} {
		out := fn(in)
		assert.Len(t, out, 2, name)
		assert.True(t, math.IsNaN(out[0]), name)
		assert.True(t, math.IsNaN(out[1]), name)
	}
}

func TestRebaseTranslationInvariant(t *testing.T) {
	values := []float64{3.5, -1.25, 7, 100.125, 0}
	base := Rebase(values)

	for _, shift := range []float64{-1000, -0.5, 0, 42, 1e6} {
		shifted := make([]float64, len(values))
		for i, v := range values {
			shifted[i] = v + shift
		}
		again := Rebase(shifted)
		for i := range base {
			assert.InDelta(t, base[i], again[i], 1e-6, "shift %v index %d", shift, i)
		}
	}
}

func TestRebaseIdempotent(t *testing.T) {
	once := Rebase([]float64{4, 6, 1})
	twice := Rebase(once)

	assert.Equal(t, once, twice)
	assert.Equal(t, 0.0, once[0])
}

func TestRebaseDoesNotMutate(t *testing.T) {
	in := []float64{2, 4}
	_ = Rebase(in)
	_ = ForTrace(in)

	assert.Equal(t, []float64{2, 4}, in)
}
