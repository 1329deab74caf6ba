package imagecache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	seed := int64(42)

	assert.Equal(t, "a dragon_cartoon_", Key("a dragon", "cartoon", nil))
	assert.Equal(t, "a dragon_cartoon_42", Key("a dragon", "cartoon", &seed))
	assert.NotEqual(t, Key("a dragon", "cartoon", nil), Key("a dragon", "icon", nil))
}

func TestCacheHitAndMiss(t *testing.T) {
	c := New(time.Hour, 10)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("k", "data-uri")
	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "data-uri", got)
}

func TestCacheExpiryShadowsWithoutDeleting(t *testing.T) {
	c := New(time.Hour, 10)

	current := time.Now()
	c.SetClock(func() time.Time { return current })

	c.Set("k", "v")

	// TTL 직전에는 히트
	current = current.Add(time.Hour - time.Second)
	_, ok := c.Get("k")
	assert.True(t, ok)

	// TTL 경과 후에는 미스지만 항목은 남아 있음
	current = current.Add(2 * time.Second)
	_, ok = c.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len())
}

func TestCacheOverwriteRefreshesTimestamp(t *testing.T) {
	c := New(time.Hour, 10)

	current := time.Now()
	c.SetClock(func() time.Time { return current })

	c.Set("k", "old")
	current = current.Add(59 * time.Minute)
	c.Set("k", "new")

	// 원래 기록 기준으로는 만료됐지만 갱신됐으므로 히트
	current = current.Add(30 * time.Minute)
	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "new", got)
}

func TestCacheEvictsOldestWhenFull(t *testing.T) {
	c := New(time.Hour, 3)

	current := time.Now()
	c.SetClock(func() time.Time { return current })

	for i := 0; i < 3; i++ {
		c.Set(fmt.Sprintf("k%d", i), fmt.Sprintf("v%d", i))
		current = current.Add(time.Minute)
	}
	require.Equal(t, 3, c.Len())

	c.Set("k3", "v3")
	assert.Equal(t, 3, c.Len())

	// 가장 오래된 k0만 밀려남
	_, ok := c.Get("k0")
	assert.False(t, ok)
	for i := 1; i <= 3; i++ {
		_, ok := c.Get(fmt.Sprintf("k%d", i))
		assert.True(t, ok, "k%d should survive eviction", i)
	}
}
