package gapbuf

import (
	"fmt"
	"io"
	"log/slog"
)

var (
	_ io.Writer     = (*Buffer)(nil)
	_ io.ReaderFrom = (*Buffer)(nil)
	_ io.WriterTo   = (*Buffer)(nil)
	_ fmt.Stringer  = (*Buffer)(nil)
)

// Buffer is a gap buffer over bytes.
//
// Storage is laid out as the left segment, the gap, the right segment and a
// single trailing slack byte that never holds content:
//
//	data[0:left]            left segment, ends at the cursor
//	data[left:right]        gap
//	data[right:len(data)-1] right segment
//	data[len(data)-1]       slack
//
// The capacity len(data) is either zero or a power of two.
type Buffer struct {
	logger *slog.Logger

	data   []byte
	left   int
	right  int
	maxCap int

	closed bool
}

// Layout is a snapshot of the buffer's storage geometry.
type Layout struct {
	// Cap is the allocated storage size, slack byte included.
	Cap int
	// Cursor is the length of the left segment.
	Cursor int
	// Right is the index where the right segment starts.
	Right int
}

// New creates a buffer holding a copy of content with the cursor placed after
// it. A nil or empty content yields a buffer with no storage.
func New(content []byte, opts ...Option) (*Buffer, error) {
	b := &Buffer{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(b)
	}
	if len(content) > 0 {
		if err := b.Insert(content); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Close releases the storage. Any later call on the buffer reports
// ErrInvalidArgument.
func (b *Buffer) Close() error {
	if b == nil {
		return nil
	}
	b.data = nil
	b.left = 0
	b.right = 0
	b.closed = true
	return nil
}

// Insert copies p into the buffer at the cursor and moves the cursor past it.
// The storage is reallocated when the gap is too small.
func (b *Buffer) Insert(p []byte) error {
	if err := b.check(); err != nil {
		return err
	}
	if len(p) == 0 {
		return nil
	}
	if err := b.reserve(len(p)); err != nil {
		return err
	}
	copy(b.data[b.left:], p)
	b.left += len(p)
	return nil
}

// Delete removes the n bytes before the cursor. No bytes move: the gap simply
// widens to the left.
func (b *Buffer) Delete(n int) error {
	if err := b.check(); err != nil {
		return err
	}
	if n < 0 || n > b.left {
		return fmt.Errorf("%w: delete %d with %d bytes before cursor", ErrRange, n, b.left)
	}
	b.left -= n
	return nil
}

// Forward moves the cursor n bytes to the right, carrying those bytes from the
// right segment across the gap.
//
// The bound is the total capacity, not the length of the right segment.
// Asking for RightLen()+1 bytes succeeds and pulls the slack byte into the
// left segment as if it were content. Callers must keep n <= RightLen().
func (b *Buffer) Forward(n int) error {
	if err := b.check(); err != nil {
		return err
	}
	if n < 0 || n > len(b.data)-b.right {
		return fmt.Errorf("%w: forward %d from %d with capacity %d", ErrRange, n, b.right, len(b.data))
	}
	copy(b.data[b.left:b.left+n], b.data[b.right:b.right+n])
	b.left += n
	b.right += n
	return nil
}

// Rewind moves the cursor n bytes to the left, carrying those bytes from the
// left segment across the gap.
func (b *Buffer) Rewind(n int) error {
	if err := b.check(); err != nil {
		return err
	}
	if n < 0 || n > b.left {
		return fmt.Errorf("%w: rewind %d with %d bytes before cursor", ErrRange, n, b.left)
	}
	copy(b.data[b.right-n:b.right], b.data[b.left-n:b.left])
	b.left -= n
	b.right -= n
	return nil
}

// MoveTo places the cursor at the absolute content offset pos.
func (b *Buffer) MoveTo(pos int) error {
	if err := b.check(); err != nil {
		return err
	}
	switch {
	case pos < 0 || pos > b.left+b.rightLen():
		return fmt.Errorf("%w: move to %d with length %d", ErrRange, pos, b.left+b.rightLen())
	case pos < b.left:
		return b.Rewind(b.left - pos)
	case pos > b.left:
		return b.Forward(pos - b.left)
	}
	return nil
}

// Len returns the number of content bytes.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return b.left + b.rightLen()
}

// Cap returns the allocated storage size, slack byte included.
func (b *Buffer) Cap() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// Cursor returns the cursor position, which is also the length of the left
// segment.
func (b *Buffer) Cursor() int {
	if b == nil {
		return 0
	}
	return b.left
}

// RightLen returns the number of content bytes after the cursor.
func (b *Buffer) RightLen() int {
	if b == nil {
		return 0
	}
	return b.rightLen()
}

// Layout returns the current storage geometry.
func (b *Buffer) Layout() Layout {
	if b == nil {
		return Layout{}
	}
	return Layout{Cap: len(b.data), Cursor: b.left, Right: b.right}
}

// Bytes returns a copy of the content.
func (b *Buffer) Bytes() []byte {
	out := make([]byte, b.Len())
	if len(out) == 0 {
		return out
	}
	n := copy(out, b.data[:b.left])
	copy(out[n:], b.data[b.right:b.right+b.rightLen()])
	return out
}

// String returns the content as a string.
func (b *Buffer) String() string {
	return string(b.Bytes())
}

func (b *Buffer) rightLen() int {
	return max(len(b.data)-1-b.right, 0)
}

func (b *Buffer) check() error {
	if b == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidArgument)
	}
	if b.closed {
		return fmt.Errorf("%w: buffer closed", ErrInvalidArgument)
	}
	return nil
}
