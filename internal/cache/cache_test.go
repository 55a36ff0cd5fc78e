package cache

import (
	"strings"
	"testing"
	"time"
)

func TestKey_StableAndDistinct(t *testing.T) {
	a := Key("wikipedia:the earth is flat")
	b := Key("wikipedia:the earth is flat")
	c := Key("wikipedia:the earth is round")

	if a != b {
		t.Error("Expected identical lookups to derive identical keys")
	}
	if a == c {
		t.Error("Expected different lookups to derive different keys")
	}
	if !strings.HasPrefix(a, "factyne:v1:") {
		t.Errorf("Expected versioned key prefix, got '%s'", a)
	}
}

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if err := c.Set("k", []byte("value"), time.Minute); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	val, found := c.Get("k")
	if !found {
		t.Fatal("Expected a hit")
	}
	if string(val) != "value" {
		t.Errorf("Expected 'value', got '%s'", val)
	}
}

func TestMemoryCache_Miss(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("Expected a miss for an unknown key")
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	_ = c.Set("k", []byte("value"), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	if _, found := c.Get("k"); found {
		t.Error("Expected the entry to expire")
	}
}

func TestMemoryCache_DeleteAndClear(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	_ = c.Set("a", []byte("1"), time.Minute)
	_ = c.Set("b", []byte("2"), time.Minute)

	if err := c.Delete("a"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, found := c.Get("a"); found {
		t.Error("Expected deleted entry to be gone")
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, found := c.Get("b"); found {
		t.Error("Expected cleared entry to be gone")
	}
}

func TestDiskCache_SetGet(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Hour)

	if err := c.Set("k", []byte("persisted"), time.Hour); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	val, found := c.Get("k")
	if !found {
		t.Fatal("Expected a hit")
	}
	if string(val) != "persisted" {
		t.Errorf("Expected 'persisted', got '%s'", val)
	}
}

func TestDiskCache_Expiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Hour)

	_ = c.Set("k", []byte("value"), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	if _, found := c.Get("k"); found {
		t.Error("Expected the entry to expire")
	}
}

func TestDiskCache_SurvivesNewInstance(t *testing.T) {
	dir := t.TempDir()

	first := NewDiskCache(dir, time.Hour)
	_ = first.Set("k", []byte("still here"), time.Hour)

	second := NewDiskCache(dir, time.Hour)
	val, found := second.Get("k")
	if !found {
		t.Fatal("Expected the entry to survive a new instance over the same dir")
	}
	if string(val) != "still here" {
		t.Errorf("Expected 'still here', got '%s'", val)
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()

	// Seed only the disk layer.
	disk := NewDiskCache(dir, time.Hour)
	_ = disk.Set(Key("lookup"), []byte("from disk"), time.Hour)

	layered := NewLayeredCache(time.Minute, dir, time.Hour)

	val, found := layered.Get(Key("lookup"))
	if !found {
		t.Fatal("Expected a disk hit through the layered cache")
	}
	if string(val) != "from disk" {
		t.Errorf("Expected 'from disk', got '%s'", val)
	}

	// Remove the disk entry; the promoted memory copy must still hit.
	_ = disk.Delete(Key("lookup"))
	if _, found := layered.Get(Key("lookup")); !found {
		t.Error("Expected the promoted entry to hit from memory")
	}
}

func TestLayeredCache_SetWritesBothLayers(t *testing.T) {
	dir := t.TempDir()
	layered := NewLayeredCache(time.Minute, dir, time.Hour)

	if err := layered.Set("k", []byte("both"), time.Hour); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	disk := NewDiskCache(dir, time.Hour)
	if _, found := disk.Get("k"); !found {
		t.Error("Expected the entry on disk")
	}
}
