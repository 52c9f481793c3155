package chaos

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlways(t *testing.T) {
	for _, o := range []Outcome{Succeed, Fail} {
		d := Always(o)
		for i := 0; i < 10; i++ {
			assert.Equal(t, o, d.Decide())
		}
	}
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "succeed", Succeed.String())
	assert.Equal(t, "fail", Fail.String())
	assert.Equal(t, "unknown", Outcome(7).String())
}

func TestRandomDecider(t *testing.T) {
	t.Run("BoundaryRates", func(t *testing.T) {
		never := NewRandomDecider(0, rand.NewSource(1))
		always := NewRandomDecider(1, rand.NewSource(1))
		for i := 0; i < 1000; i++ {
			assert.Equal(t, Succeed, never.Decide())
			assert.Equal(t, Fail, always.Decide())
		}
	})

	t.Run("ConvergesToRate", func(t *testing.T) {
		d := NewRandomDecider(0.3, rand.NewSource(7))
		assert.Equal(t, 0.3, d.Rate())

		const n = 10000
		failures := 0
		for i := 0; i < n; i++ {
			if d.Decide() == Fail {
				failures++
			}
		}

		// 0.03 is more than six standard deviations at n=10000
		assert.InDelta(t, 0.3, float64(failures)/n, 0.03)
	})

	t.Run("SameSeedSameSequence", func(t *testing.T) {
		a := NewSeededDecider(0.3, 99)
		b := NewSeededDecider(0.3, 99)
		for i := 0; i < 100; i++ {
			assert.Equal(t, a.Decide(), b.Decide())
		}
	})

	t.Run("ZeroSeedUsesClock", func(t *testing.T) {
		d := NewSeededDecider(0.5, 0)
		assert.NotNil(t, d.rng)
	})

	t.Run("ConcurrentUse", func(t *testing.T) {
		d := NewRandomDecider(0.3, rand.NewSource(3))

		var wg sync.WaitGroup
		for g := 0; g < 8; g++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < 500; i++ {
					d.Decide()
				}
			}()
		}
		wg.Wait()
	})
}
