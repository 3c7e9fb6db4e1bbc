package cache

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	k1 := Key("https://example.org/policy")
	k2 := Key("https://example.org/policy")
	k3 := Key("https://example.org/other")

	if k1 != k2 {
		t.Error("same source must map to the same key")
	}
	if k1 == k3 {
		t.Error("different sources must map to different keys")
	}
	if !strings.HasPrefix(k1, "attestor:v1:") {
		t.Errorf("key missing version prefix: %s", k1)
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("empty cache reported a hit")
	}

	if err := c.Set("k", []byte("extracted text"), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	val, found := c.Get("k")
	if !found || string(val) != "extracted text" {
		t.Errorf("get = %q, %v", val, found)
	}

	_ = c.Delete("k")
	if _, found := c.Get("k"); found {
		t.Error("value survived delete")
	}
}

func TestDiskCache(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Hour)

	if err := c.Set(Key("source"), []byte("body"), 0); err != nil {
		t.Fatalf("set: %v", err)
	}
	val, found := c.Get(Key("source"))
	if !found || string(val) != "body" {
		t.Errorf("get = %q, %v", val, found)
	}

	// A fresh instance over the same directory still sees the entry
	c2 := NewDiskCache(dir, time.Hour)
	if _, found := c2.Get(Key("source")); !found {
		t.Error("entry not persisted across instances")
	}
}

func TestDiskCache_Expiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Hour)

	if err := c.Set("k", []byte("stale"), -time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("expired entry returned")
	}
}

func TestDiskCache_CorruptEntry(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Hour)

	if err := os.WriteFile(filepath.Join(dir, "bad.cache"), []byte("not json"), 0o644); err != nil {
		t.Fatalf("prepare: %v", err)
	}
	if _, found := c.Get("bad"); found {
		t.Error("corrupt entry returned")
	}
}

func TestLayeredCache(t *testing.T) {
	dir := t.TempDir()
	c := NewLayeredCache(time.Minute, dir, time.Hour)

	if err := c.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	if val, found := c.Get("k"); !found || string(val) != "v" {
		t.Errorf("get = %q, %v", val, found)
	}

	// Disk hit promotes to memory after a memory miss
	fresh := NewLayeredCache(time.Minute, dir, time.Hour)
	if _, found := fresh.Get("k"); !found {
		t.Error("disk layer miss")
	}
	if _, found := fresh.memory.Get("k"); !found {
		t.Error("disk hit was not promoted to memory")
	}

	_ = c.Delete("k")
	if _, found := c.Get("k"); found {
		t.Error("value survived delete")
	}
}
