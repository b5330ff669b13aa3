package tileloop

import "sync"

// Run invokes f(i) for every i in [0, n) exactly once.
//
// Work is split into ceil(n/workers) sized blocks; worker k owns
// [k*block, min((k+1)*block, n)). No more than
// min(workers, ceil(n/block)) goroutines are spawned. workers <= 1 (or
// n <= 1) runs sequentially in ascending order on the calling goroutine,
// without spawning anything.
func Run(n, workers int, f func(i int)) {
	RunIndexed(n, workers, func(i, _ int) { f(i) })
}

// RunIndexed is Run, but f additionally receives the owning worker's index
// in [0, workers), stable for the duration of one RunIndexed call. This
// lets callers key per-worker scratch buffers by worker id instead of
// allocating fresh scratch per tile.
func RunIndexed(n, workers int, f func(i, worker int)) {
	if n <= 0 {
		return
	}

	if workers < 1 {
		workers = 1
	}

	if workers == 1 || n == 1 {
		for i := range n {
			f(i, 0)
		}

		return
	}

	block := (n + workers - 1) / workers

	threadsNeeded := min(workers, (n+block-1)/block)

	var wg sync.WaitGroup

	wg.Add(threadsNeeded)

	for w := range threadsNeeded {
		go func(worker int) {
			defer wg.Done()

			start := worker * block
			end := min(start+block, n)

			for i := start; i < end; i++ {
				f(i, worker)
			}
		}(w)
	}

	wg.Wait()
}
