package gapbuf_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jacoelho/gapbuf"
)

func TestInspect(t *testing.T) {
	b := newTestBuffer(t, "abcdef")
	mustRewind(t, b, 2)
	before := b.Layout()

	var out bytes.Buffer
	if err := b.Inspect(&out); err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}

	want := "cap=8 len=6 cursor=4 right=5\n" +
		"left  \"abcd\"\n" +
		"gap   .\n" +
		"right \"ef\"\n" +
		"slack \"\\x00\"\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Fatalf("dump mismatch (-want +got):\n%s", diff)
	}
	expectLayout(t, b, before)
	expectContent(t, b, "abcdef")
}

func TestInspectEmpty(t *testing.T) {
	b := newTestBuffer(t, "")

	var out bytes.Buffer
	if err := b.Inspect(&out); err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	want := "cap=0 len=0 cursor=0 right=0\n(no storage)\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Fatalf("dump mismatch (-want +got):\n%s", diff)
	}
}

func TestInspectLongGap(t *testing.T) {
	b := newTestBuffer(t, string(bytes.Repeat([]byte("x"), 100)))
	if err := b.Delete(100); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	var out bytes.Buffer
	if err := b.Inspect(&out); err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	if !bytes.Contains(out.Bytes(), []byte("(127 bytes)")) {
		t.Fatalf("expected truncated gap, got %q", out.String())
	}
}

func TestInspectWriteError(t *testing.T) {
	b := newTestBuffer(t, "abc")

	writeErr := errors.New("write failed")
	expectError(t, b.Inspect(&failingWriterTest{err: writeErr}), writeErr)
}

func TestInspectClosed(t *testing.T) {
	b, err := gapbuf.New([]byte("abc"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	b.Close()

	var out bytes.Buffer
	expectError(t, b.Inspect(&out), gapbuf.ErrInvalidArgument)
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}
