package cache

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) Now() time.Time          { return f.t }
func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func TestLRUCache(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		ttl      time.Duration
		actions  func(c *LRUCache[string], clock *fakeClock, t *testing.T)
	}{
		{
			name:     "set and get within TTL",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache[string], _ *fakeClock, t *testing.T) {
				c.Set("ORD-1", "17")
				if v, ok := c.Get("ORD-1"); !ok || v != "17" {
					t.Errorf("expected value=17, got=%v, ok=%v", v, ok)
				}
			},
		},
		{
			name:     "get after expiration",
			capacity: 2,
			ttl:      50 * time.Millisecond,
			actions: func(c *LRUCache[string], clock *fakeClock, t *testing.T) {
				c.Set("ORD-1", "17")
				clock.Advance(60 * time.Millisecond)
				if _, ok := c.Get("ORD-1"); ok {
					t.Errorf("expected key to be expired")
				}
			},
		},
		{
			name:     "zero ttl never expires",
			capacity: 2,
			ttl:      0,
			actions: func(c *LRUCache[string], clock *fakeClock, t *testing.T) {
				c.Set("ORD-1", "17")
				clock.Advance(24 * time.Hour)
				if _, ok := c.Get("ORD-1"); !ok {
					t.Errorf("expected key to survive without ttl")
				}
			},
		},
		{
			name:     "evict oldest when over capacity",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache[string], _ *fakeClock, t *testing.T) {
				c.Set("a", "1")
				c.Set("b", "2")
				c.Set("c", "3")
				if _, ok := c.Get("a"); ok {
					t.Errorf("expected key 'a' to be evicted")
				}
				if v, ok := c.Get("b"); !ok || v != "2" {
					t.Errorf("expected b=2, got %v", v)
				}
				if v, ok := c.Get("c"); !ok || v != "3" {
					t.Errorf("expected c=3, got %v", v)
				}
			},
		},
		{
			name:     "zero capacity keeps nothing",
			capacity: 0,
			ttl:      time.Second,
			actions: func(c *LRUCache[string], _ *fakeClock, t *testing.T) {
				c.Set("a", "1")
				if _, ok := c.Get("a"); ok {
					t.Errorf("expected disabled cache to miss")
				}
				if c.Size() != 0 {
					t.Errorf("expected size 0, got %d", c.Size())
				}
			},
		},
		{
			name:     "update value resets TTL",
			capacity: 2,
			ttl:      50 * time.Millisecond,
			actions: func(c *LRUCache[string], clock *fakeClock, t *testing.T) {
				c.Set("a", "1")
				clock.Advance(30 * time.Millisecond)
				c.Set("a", "2")
				clock.Advance(30 * time.Millisecond)
				if v, ok := c.Get("a"); !ok || v != "2" {
					t.Errorf("expected updated value=2, got=%v", v)
				}
			},
		},
		{
			name:     "delete removes key",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache[string], _ *fakeClock, t *testing.T) {
				c.Set("a", "1")
				c.Delete("a")
				if _, ok := c.Get("a"); ok {
					t.Errorf("expected key to be deleted")
				}
			},
		},
		{
			name:     "cleanup removes expired",
			capacity: 2,
			ttl:      50 * time.Millisecond,
			actions: func(c *LRUCache[string], clock *fakeClock, t *testing.T) {
				c.Set("a", "1")
				clock.Advance(60 * time.Millisecond)
				c.Set("b", "2")

				c.cleanup()

				if c.Size() != 1 {
					t.Errorf("expected janitor cleanup to leave one key, got %d", c.Size())
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
			c := NewLRUCache[string](tt.capacity, tt.ttl)
			c.now = clock.Now
			tt.actions(c, clock, t)
		})
	}
}
