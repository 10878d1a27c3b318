package floatmenu

import "testing"

func TestFrameStoreGetCreatesAndPersists(t *testing.T) {
	store := NewFrameStore[int]()

	p := store.Get(1, 5)
	if *p != 5 {
		t.Fatalf("expected default 5, got %d", *p)
	}
	*p = 7

	if got := store.Get(1, 5); *got != 7 {
		t.Errorf("expected mutation to persist, got %d", *got)
	}
	if store.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", store.Len())
	}
}

func TestFrameStoreCleanupDropsStaleEntries(t *testing.T) {
	store := NewFrameStore[int]()

	p := store.Get(1, 5)
	*p = 7

	// Accessed last frame: survives one frame boundary
	NextFrame()
	if store.GetIfExists(1) == nil {
		t.Fatal("entry accessed last frame should survive cleanup")
	}

	// Not accessed for a full frame: dropped
	NextFrame()
	NextFrame()
	if store.GetIfExists(1) != nil {
		t.Error("stale entry should be cleaned up")
	}
	if got := store.Get(1, 5); *got != 5 {
		t.Errorf("recreated entry should use the default, got %d", *got)
	}
}

func TestFrameStoreSetAndDelete(t *testing.T) {
	store := NewFrameStore[string]()

	store.Set(2, "hello")
	if p := store.GetIfExists(2); p == nil || *p != "hello" {
		t.Error("Set should create the entry")
	}

	store.Delete(2)
	if store.GetIfExists(2) != nil {
		t.Error("Delete should remove the entry")
	}
}

func TestFrameStoreClear(t *testing.T) {
	store := NewFrameStore[int]()
	store.Set(1, 1)
	store.Set(2, 2)

	store.Clear()
	if store.Len() != 0 {
		t.Errorf("Clear should drop every entry, got %d", store.Len())
	}
}
