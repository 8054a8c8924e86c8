package gapbuf

import (
	"fmt"
	"io"
)

// ReadContent copies the content into dst: the left segment first, then as much
// of the right segment as still fits. When fewer than len(dst) bytes are
// copied a zero terminator is written right after them; it is not counted in
// the returned length. The cursor does not move.
//
// A nil or empty dst reports ErrInvalidArgument and copies nothing.
func (b *Buffer) ReadContent(dst []byte) (int, error) {
	if err := b.check(); err != nil {
		return 0, err
	}
	if len(dst) == 0 {
		return 0, fmt.Errorf("%w: empty output", ErrInvalidArgument)
	}

	n := copy(dst, b.data[:b.left])
	n += copy(dst[n:], b.data[b.right:b.right+b.rightLen()])
	if n < len(dst) {
		dst[n] = 0
	}
	return n, nil
}

// Write implements io.Writer by inserting p at the cursor.
func (b *Buffer) Write(p []byte) (int, error) {
	if err := b.Insert(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// ReadFrom implements io.ReaderFrom by inserting everything read from r at
// the cursor until EOF or an error occurs.
func (b *Buffer) ReadFrom(r io.Reader) (int64, error) {
	if err := b.check(); err != nil {
		return 0, err
	}
	buf := make([]byte, 32*1024)
	var total int64
	for {
		n, rErr := r.Read(buf)
		if n > 0 {
			if err := b.Insert(buf[:n]); err != nil {
				return total, err
			}
			total += int64(n)
		}
		if rErr == io.EOF {
			return total, nil
		}
		if rErr != nil {
			return total, rErr
		}
	}
}

// WriteTo implements io.WriterTo by writing the content to w. The segments are
// written as they are stored, without flattening, and the cursor does not move.
func (b *Buffer) WriteTo(w io.Writer) (n int64, err error) {
	if err := b.check(); err != nil {
		return 0, err
	}
	for _, seg := range [][]byte{b.data[:b.left], b.data[b.right : b.right+b.rightLen()]} {
		if len(seg) == 0 {
			continue
		}
		wn, wErr := w.Write(seg)
		if wn < 0 || wn > len(seg) {
			wn = 0
			if wErr == nil {
				wErr = io.ErrShortWrite
			}
		}
		n += int64(wn)
		if wErr != nil {
			return n, wErr
		}
		if wn != len(seg) {
			return n, io.ErrShortWrite
		}
	}
	return n, nil
}
