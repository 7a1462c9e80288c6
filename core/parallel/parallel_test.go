package parallel

import (
	"sync/atomic"
	"testing"
)

func TestParallelize_CoversAllItems(t *testing.T) {
	const items = 1000
	var covered [items]int32

	Parallelize(items, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&covered[i], 1)
		}
	})

	for i, c := range covered {
		if c != 1 {
			t.Fatalf("item %d covered %d times, want exactly once", i, c)
		}
	}
}

func TestParallelize_ZeroItems(t *testing.T) {
	called := false
	Parallelize(0, func(start, end int) {
		called = true
	})
	if called {
		t.Error("fn must not be called for zero items")
	}
}

func TestParallelizeWithThreshold_Sequential(t *testing.T) {
	var calls int32
	ParallelizeWithThreshold(4, 10, func(start, end int) {
		atomic.AddInt32(&calls, 1)
		if start != 0 || end != 4 {
			t.Errorf("sequential call got range (%d, %d), want (0, 4)", start, end)
		}
	})
	if calls != 1 {
		t.Errorf("fn called %d times, want 1", calls)
	}
}
