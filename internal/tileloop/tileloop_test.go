package tileloop

import (
	"sort"
	"sync"
	"sync/atomic"
	"testing"
)

func TestRunVisitsEveryIndexOnce(t *testing.T) {
	for _, workers := range []int{0, 1, 2, 3, 8, 64} {
		const n = 37

		var mu sync.Mutex

		var seen []int

		Run(n, workers, func(i int) {
			mu.Lock()
			seen = append(seen, i)
			mu.Unlock()
		})

		if len(seen) != n {
			t.Fatalf("workers=%d: visited %d indices, want %d", workers, len(seen), n)
		}

		sort.Ints(seen)

		for i, v := range seen {
			if v != i {
				t.Fatalf("workers=%d: index %d missing or duplicated, got sorted %v", workers, i, seen)
			}
		}
	}
}

func TestRunZeroOrOne(t *testing.T) {
	called := false
	Run(0, 4, func(int) { called = true })

	if called {
		t.Fatal("Run(0, ...) should not invoke f")
	}

	var got int

	Run(1, 4, func(i int) { got = i })

	if got != 0 {
		t.Fatalf("Run(1, ...) got index %d, want 0", got)
	}
}

func TestRunIndexedWorkerIDInRange(t *testing.T) {
	const n, workers = 100, 4

	var maxWorker atomic.Int32

	RunIndexed(n, workers, func(_, w int) {
		for {
			cur := maxWorker.Load()
			if int32(w) <= cur || maxWorker.CompareAndSwap(cur, int32(w)) {
				break
			}
		}
	})

	if got := int(maxWorker.Load()); got >= workers {
		t.Fatalf("worker id %d >= workers %d", got, workers)
	}
}

func TestRunSequentialIsOrdered(t *testing.T) {
	const n = 20

	var seen []int

	Run(n, 1, func(i int) { seen = append(seen, i) })

	for i, v := range seen {
		if v != i {
			t.Fatalf("sequential run out of order at %d: got %d", i, v)
		}
	}
}
