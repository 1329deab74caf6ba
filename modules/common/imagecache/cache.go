package imagecache

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// entry - 캐시 항목 (성공한 생성 결과의 data URI)
type entry struct {
	data      string
	timestamp time.Time
}

// Cache - 프로세스 전역 이미지 캐시
// TTL이 지난 항목은 조회 시 무시만 하고(섀도잉) 능동적으로 지우지 않음
// 용량 초과 시 가장 오래된 항목부터 제거
// Go 런타임은 진짜 병렬 실행이므로 mutex가 필수임
type Cache struct {
	mu       sync.Mutex
	entries  map[string]entry
	ttl      time.Duration
	capacity int
	now      func() time.Time
}

// New - 캐시 생성 (TTL/용량 정책 주입)
func New(ttl time.Duration, capacity int) *Cache {
	return &Cache{
		entries:  make(map[string]entry),
		ttl:      ttl,
		capacity: capacity,
		now:      time.Now,
	}
}

// Key - (프롬프트, 스타일, 시드) 복합 키 생성
func Key(prompt, style string, seed *int64) string {
	seedPart := ""
	if seed != nil {
		seedPart = fmt.Sprintf("%d", *seed)
	}
	return strings.Join([]string{prompt, style, seedPart}, "_")
}

// Get - 캐시 조회 (TTL 이내 항목만 히트)
func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return "", false
	}
	if c.now().Sub(e.timestamp) >= c.ttl {
		// 만료된 항목은 미스로 처리 (삭제하지 않음)
		return "", false
	}
	return e.data, true
}

// Set - 캐시 기록, 용량 초과 시 가장 오래된 항목 제거
func (c *Cache) Set(key, data string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{data: data, timestamp: c.now()}

	for len(c.entries) > c.capacity {
		oldestKey := ""
		var oldestTime time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.timestamp.Before(oldestTime) {
				oldestKey = k
				oldestTime = e.timestamp
			}
		}
		delete(c.entries, oldestKey)
	}
}

// Len - 현재 항목 수
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// SetClock - 테스트에서 시간 주입
func (c *Cache) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}
