package imagegen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackoffDelayDoublesUpToCap(t *testing.T) {
	p := GenerationPolicy{BackoffBase: time.Second, BackoffCap: 10 * time.Second}

	assert.Equal(t, 1*time.Second, p.BackoffDelay(1, false))
	assert.Equal(t, 2*time.Second, p.BackoffDelay(2, false))
	assert.Equal(t, 4*time.Second, p.BackoffDelay(3, false))
	assert.Equal(t, 8*time.Second, p.BackoffDelay(4, false))
	assert.Equal(t, 10*time.Second, p.BackoffDelay(5, false))
	assert.Equal(t, 10*time.Second, p.BackoffDelay(20, false))
}

func TestBackoffDelayIsMonotonic(t *testing.T) {
	p := GenerationPolicy{BackoffBase: 250 * time.Millisecond, BackoffCap: 5 * time.Second}

	prev := time.Duration(0)
	for attempt := 1; attempt <= 10; attempt++ {
		d := p.BackoffDelay(attempt, false)
		assert.GreaterOrEqual(t, d, prev, "attempt %d", attempt)
		assert.LessOrEqual(t, d, p.BackoffCap)
		prev = d
	}
}

func TestBackoffDelayRateLimitedWaitsLonger(t *testing.T) {
	p := GenerationPolicy{BackoffBase: time.Second, BackoffCap: 10 * time.Second}

	assert.Equal(t, 2*time.Second, p.BackoffDelay(1, true))
	assert.Equal(t, 4*time.Second, p.BackoffDelay(2, true))
	// 상한은 레이트리밋이어도 넘지 않음
	assert.Equal(t, 10*time.Second, p.BackoffDelay(5, true))
}
