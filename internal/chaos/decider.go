package chaos

import (
	"math/rand"
	"sync"
	"time"
)

// Outcome is the result of a single failure draw
type Outcome int

const (
	// Succeed lets the invocation complete normally
	Succeed Outcome = iota
	// Fail makes the invocation take its simulated failure path
	Fail
)

func (o Outcome) String() string {
	switch o {
	case Succeed:
		return "succeed"
	case Fail:
		return "fail"
	default:
		return "unknown"
	}
}

// Decider picks the outcome of an invocation. Every call is an independent
// draw.
type Decider interface {
	Decide() Outcome
}

// DeciderFunc adapts a plain function to Decider
type DeciderFunc func() Outcome

// Decide implements Decider
func (f DeciderFunc) Decide() Outcome {
	return f()
}

// Always returns a Decider that yields the same outcome every time
func Always(o Outcome) Decider {
	return DeciderFunc(func() Outcome { return o })
}

// RandomDecider fails with a fixed probability
type RandomDecider struct {
	mu   sync.Mutex
	rng  *rand.Rand
	rate float64
}

// NewRandomDecider creates a decider that fails when a uniform draw in
// [0, 1) falls below rate. A nil source is seeded from the clock.
func NewRandomDecider(rate float64, src rand.Source) *RandomDecider {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}

	return &RandomDecider{
		rng:  rand.New(src),
		rate: rate,
	}
}

// NewSeededDecider is NewRandomDecider with a seed; zero means seed from the clock
func NewSeededDecider(rate float64, seed int64) *RandomDecider {
	if seed == 0 {
		return NewRandomDecider(rate, nil)
	}
	return NewRandomDecider(rate, rand.NewSource(seed))
}

// Decide implements Decider
func (d *RandomDecider) Decide() Outcome {
	// rand.Rand is not safe for concurrent use
	d.mu.Lock()
	v := d.rng.Float64()
	d.mu.Unlock()

	if v < d.rate {
		return Fail
	}
	return Succeed
}

// Rate returns the configured failure probability
func (d *RandomDecider) Rate() float64 {
	return d.rate
}
