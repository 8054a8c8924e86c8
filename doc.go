// Package gapbuf implements a gap buffer: a mutable byte sequence with a movable
// empty region at the cursor. Insertions and deletions next to the cursor cost
// only the bytes they touch, and moving the cursor shuttles just the traversed
// bytes across the gap, which makes it a good fit for editor-style workloads.
//
// A Buffer is not safe for concurrent use.
package gapbuf
