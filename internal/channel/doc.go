// Package channel interleaves and deinterleaves multi-channel byte buffers
// into per-channel float32 planes, in L2-sized tiles dispatched across
// tileloop workers.
package channel
