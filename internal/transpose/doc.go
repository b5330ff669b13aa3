// Package transpose transposes single-channel planar float32 buffers
// using L2-sized square blocks so large images stay cache-friendly, with
// outer blocks dispatched across tileloop workers.
package transpose
