package render

import "testing"

func TestCacheFactoryInvokedOncePerKey(t *testing.T) {
	c := NewCache[int, string]()
	calls := 0
	build := func() string {
		calls++
		return "value"
	}
	for i := 0; i < 5; i++ {
		if got := c.GetOrCreate(7, build); got != "value" {
			t.Fatalf("GetOrCreate = %q, want %q", got, "value")
		}
	}
	if calls != 1 {
		t.Fatalf("factory called %d times, want 1", calls)
	}
}

func TestCacheDistinctKeysAreDistinctEntries(t *testing.T) {
	type textKey struct{ score, best int }
	c := NewCache[textKey, string]()
	a := c.GetOrCreate(textKey{12, 40}, func() string { return "12/40" })
	b := c.GetOrCreate(textKey{13, 40}, func() string { return "13/40" })
	if a == b {
		t.Fatal("different content keys produced the same entry")
	}
	if c.Len() != 2 {
		t.Fatalf("len = %d, want 2", c.Len())
	}
}

func TestCacheHitRate(t *testing.T) {
	c := NewCache[string, int]()
	if c.HitRate() != 0 {
		t.Fatalf("empty hit rate = %v, want 0", c.HitRate())
	}
	c.GetOrCreate("a", func() int { return 1 }) // miss
	c.GetOrCreate("a", func() int { return 1 }) // hit
	c.GetOrCreate("a", func() int { return 1 }) // hit
	c.GetOrCreate("b", func() int { return 2 }) // miss
	if got := c.HitRate(); got != 0.5 {
		t.Fatalf("hit rate = %v, want 0.5", got)
	}
}

func TestCacheClear(t *testing.T) {
	c := NewCache[int, int]()
	c.GetOrCreate(1, func() int { return 1 })
	c.Clear()
	if c.Len() != 0 {
		t.Fatalf("len after Clear = %d, want 0", c.Len())
	}
	calls := 0
	c.GetOrCreate(1, func() int { calls++; return 1 })
	if calls != 1 {
		t.Fatal("entry survived Clear")
	}
}
