package gapbuf

import "errors"

// Errors returned by Buffer operations. Returned errors may wrap these with
// extra detail; match them with errors.Is.
var (
	// ErrOutOfMemory indicates the buffer could not grow. The buffer is left
	// exactly as it was before the call.
	ErrOutOfMemory = errors.New("gapbuf: out of memory")

	// ErrRange indicates a count that reaches past the content available to
	// the operation. The buffer is not modified.
	ErrRange = errors.New("gapbuf: range error")

	// ErrInvalidArgument indicates a nil or closed buffer, or an unusable
	// output slice.
	ErrInvalidArgument = errors.New("gapbuf: invalid argument")
)
