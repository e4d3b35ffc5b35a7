package cache

import (
	"context"
	"testing"
)

func TestKeyVariesWithInputs(t *testing.T) {
	base := Key(3, "billboard", 2)
	if Key(4, "billboard", 2) == base {
		t.Fatal("version change must change the key")
	}
	if Key(3, "skyscraper", 2) == base {
		t.Fatal("slug change must change the key")
	}
	if Key(3, "billboard", 1) == base {
		t.Fatal("pixel ratio change must change the key")
	}
}

func TestMemoryCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(4)

	if _, ok := c.Get(ctx, "a"); ok {
		t.Fatal("unexpected hit on empty cache")
	}

	c.Set(ctx, "a", []byte("one"))
	data, ok := c.Get(ctx, "a")
	if !ok || string(data) != "one" {
		t.Fatalf("got %q ok=%v", data, ok)
	}
}

func TestMemoryCacheEvictsOldest(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(2)

	c.Set(ctx, "a", []byte("1"))
	c.Set(ctx, "b", []byte("2"))
	c.Set(ctx, "c", []byte("3"))

	if _, ok := c.Get(ctx, "a"); ok {
		t.Fatal("oldest entry should have been evicted")
	}
	if _, ok := c.Get(ctx, "b"); !ok {
		t.Fatal("entry b should survive")
	}
	if _, ok := c.Get(ctx, "c"); !ok {
		t.Fatal("entry c should survive")
	}
}

func TestMemoryCacheOverwriteDoesNotGrow(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(2)

	c.Set(ctx, "a", []byte("1"))
	c.Set(ctx, "b", []byte("2"))
	c.Set(ctx, "a", []byte("updated"))

	if _, ok := c.Get(ctx, "b"); !ok {
		t.Fatal("overwrite must not evict")
	}
	data, _ := c.Get(ctx, "a")
	if string(data) != "updated" {
		t.Fatalf("got %q", data)
	}
}
