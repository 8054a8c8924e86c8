package gapbuf

import (
	"fmt"
	"log/slog"
	"math"
	"math/bits"
)

// nextCapacity returns the smallest power of two greater than or equal to n.
// It returns 0 for n == 0 and when the result would not fit in an int.
func nextCapacity(n int) int {
	if n <= 0 {
		return 0
	}
	v := uint(n) - 1
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	if bits.UintSize == 64 {
		v |= v >> 32
	}
	v++
	if v == 0 || v > math.MaxInt {
		return 0
	}
	return int(v)
}

// reserve makes sure n more bytes fit in the gap, reallocating when they do
// not. Growth fires even when the gap would hold exactly n bytes so the slack
// byte at the end of the storage stays free. On failure the buffer is left
// untouched.
func (b *Buffer) reserve(n int) error {
	if n < b.right-b.left {
		return nil
	}

	oldCap := len(b.data)
	if oldCap == 0 {
		// an empty buffer counts as holding just its slack byte
		oldCap = 1
	}
	if n > math.MaxInt-oldCap {
		return fmt.Errorf("%w: %d bytes on top of capacity %d", ErrOutOfMemory, n, len(b.data))
	}

	newCap := nextCapacity(oldCap + n)
	if newCap == 0 {
		return fmt.Errorf("%w: %d bytes on top of capacity %d", ErrOutOfMemory, n, len(b.data))
	}
	if b.maxCap > 0 && newCap > b.maxCap {
		return fmt.Errorf("%w: capacity %d exceeds limit %d", ErrOutOfMemory, newCap, b.maxCap)
	}

	data, err := allocate(newCap)
	if err != nil {
		return err
	}

	// The right segment moves right by the capacity delta; the cursor stays.
	rightLen := b.rightLen()
	newRight := b.right + newCap - oldCap
	copy(data, b.data[:b.left])
	copy(data[newRight:], b.data[b.right:b.right+rightLen])

	b.logger.Debug("gap buffer grown",
		slog.Int("from", len(b.data)),
		slog.Int("to", newCap),
		slog.Int("cursor", b.left),
		slog.Int("right", newRight),
	)

	b.data = data
	b.right = newRight
	return nil
}

// allocate turns a refused allocation size into ErrOutOfMemory instead of a
// panic.
func allocate(size int) (data []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			data, err = nil, fmt.Errorf("%w: allocating %d bytes: %v", ErrOutOfMemory, size, r)
		}
	}()
	return make([]byte, size), nil
}
