package store

import (
	"sync"
	"testing"

	"github.com/robalobadob/wordtide/internal/game"
)

func TestGetOrCreateIdempotent(t *testing.T) {
	m := NewMemory()

	first := m.GetOrCreate("tok-1", "20240101")
	if first == nil {
		t.Fatal("GetOrCreate returned nil")
	}
	if len(first.Attempts) != 0 || first.Finished || first.Won {
		t.Errorf("new record not empty: %+v", first)
	}

	if again := m.GetOrCreate("tok-1", "20240101"); again != first {
		t.Error("second GetOrCreate returned a different record")
	}
	if other := m.GetOrCreate("tok-1", "20240102"); other == first {
		t.Error("different date returned the same record")
	}
	if other := m.GetOrCreate("tok-2", "20240101"); other == first {
		t.Error("different token returned the same record")
	}
}

func TestGetOrCreateConcurrentSameKey(t *testing.T) {
	m := NewMemory()

	const workers = 50
	recs := make([]*game.Record, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			recs[i] = m.GetOrCreate("tok-1", "20240101")
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		if recs[i] != recs[0] {
			t.Fatalf("worker %d got a different record pointer", i)
		}
	}
}

func TestSweepRemovesOldDates(t *testing.T) {
	m := NewMemory()

	old1 := m.GetOrCreate("tok-1", "20240101")
	old1.Finished = true
	m.GetOrCreate("tok-1", "20240104")
	old2 := m.GetOrCreate("tok-2", "20231231")
	old2.Finished = true

	if removed := m.Sweep("20240102"); removed != 2 {
		t.Errorf("Sweep removed %d records, want 2", removed)
	}

	// Old keys come back as fresh empty records.
	if rec := m.GetOrCreate("tok-1", "20240101"); rec == old1 || rec.Finished {
		t.Error("swept record survived for tok-1/20240101")
	}
	if rec := m.GetOrCreate("tok-2", "20231231"); rec == old2 || rec.Finished {
		t.Error("swept record survived for tok-2/20231231")
	}
}

func TestSweepKeepsCutoffAndNewer(t *testing.T) {
	m := NewMemory()

	boundary := m.GetOrCreate("tok-1", "20240102")
	boundary.Won = true
	newer := m.GetOrCreate("tok-1", "20240105")
	newer.Finished = true

	if removed := m.Sweep("20240102"); removed != 0 {
		t.Errorf("Sweep removed %d records, want 0", removed)
	}
	if rec := m.GetOrCreate("tok-1", "20240102"); rec != boundary || !rec.Won {
		t.Error("record at the cutoff date was removed")
	}
	if rec := m.GetOrCreate("tok-1", "20240105"); rec != newer || !rec.Finished {
		t.Error("newer record was removed")
	}
}

func TestSweepEmptyStore(t *testing.T) {
	m := NewMemory()
	if removed := m.Sweep("20240101"); removed != 0 {
		t.Errorf("Sweep on empty store removed %d, want 0", removed)
	}
}
