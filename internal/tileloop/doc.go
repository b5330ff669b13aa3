// Package tileloop partitions a [0, N) index range into contiguous blocks
// and runs a closure over each index, optionally fanning the blocks out
// across goroutines.
//
// Run and RunIndexed are join barriers: both return only after every index
// has been processed. Callers must not rely on any ordering between
// indices when workers > 1; the closure must be independent across i.
package tileloop
