package quota

import (
	"sync"
	"testing"
)

func TestTrackerRecordAndSnapshot(t *testing.T) {
	tracker := NewTracker()

	if got := tracker.Snapshot(); got.Observed {
		t.Fatalf("expected unobserved quota before any record, got %+v", got)
	}

	tracker.Record(42, 60)
	got := tracker.Snapshot()
	if !got.Observed || got.Remaining != 42 || got.Limit != 60 {
		t.Fatalf("unexpected snapshot %+v", got)
	}

	tracker.Record(41, 60)
	if got := tracker.Snapshot(); got.Remaining != 41 {
		t.Fatalf("expected last write to win, got %+v", got)
	}
}

func TestTrackerConcurrentAccess(t *testing.T) {
	tracker := NewTracker()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			tracker.Record(n, 60)
		}(i)
		go func() {
			defer wg.Done()
			_ = tracker.Snapshot()
		}()
	}
	wg.Wait()

	if got := tracker.Snapshot(); !got.Observed || got.Limit != 60 {
		t.Fatalf("unexpected snapshot after concurrent writes: %+v", got)
	}
}

func TestNilTrackerIsSafe(t *testing.T) {
	var tracker *Tracker
	tracker.Record(1, 2)
	if got := tracker.Snapshot(); got.Observed {
		t.Fatalf("expected zero quota from nil tracker, got %+v", got)
	}
}
