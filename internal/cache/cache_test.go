package cache

import (
	"strconv"
	"sync"
	"testing"
)

func TestKeyDeterministic(t *testing.T) {
	a := Key("projects_list", "page", "1", "limit", "10")
	b := Key("projects_list", "page", "1", "limit", "10")
	if a != b {
		t.Errorf("expected identical keys, got %q and %q", a, b)
	}
}

func TestKeyDistinguishesParams(t *testing.T) {
	keys := map[string]bool{
		Key("projects_list", "page", "1", "limit", "10"):                  true,
		Key("projects_list", "page", "2", "limit", "10"):                  true,
		Key("images_list", "page", "1", "limit", "10"):                    true,
		Key("images_list", "page", "1", "limit", "10", "project_id", "3"): true,
	}
	if len(keys) != 4 {
		t.Errorf("expected 4 distinct keys, got %d", len(keys))
	}
}

func TestKeyNormalizesWhitespace(t *testing.T) {
	a := Key("messages_list", "read", "true")
	b := Key("messages_list", "read", " true ")
	if a != b {
		t.Errorf("expected normalized keys to match, got %q and %q", a, b)
	}
}

func TestGetSetInvalidate(t *testing.T) {
	c := New()
	key := Key("project", "id", "1")

	if _, ok := c.Get(key); ok {
		t.Fatalf("expected miss on empty cache")
	}

	c.Set(key, "payload")
	v, ok := c.Get(key)
	if !ok || v.(string) != "payload" {
		t.Fatalf("expected cached payload, got %v %v", v, ok)
	}

	c.InvalidateAll()
	if _, ok := c.Get(key); ok {
		t.Errorf("expected miss after invalidation")
	}
	if c.Len() != 0 {
		t.Errorf("expected empty cache, got %d entries", c.Len())
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := New()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := Key("op", "n", strconv.Itoa(j%10))
				c.Set(key, n)
				c.Get(key)
				if j%25 == 0 {
					c.InvalidateAll()
				}
			}
		}(i)
	}
	wg.Wait()
}
