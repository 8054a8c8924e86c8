package gapbuf

import (
	"bytes"
	"strings"
	"testing"
)

func TestInspectColors(t *testing.T) {
	b, err := New([]byte("abcdef"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := b.Rewind(2); err != nil {
		t.Fatalf("Rewind failed: %v", err)
	}
	before := b.Layout()

	var plain, colored bytes.Buffer
	if err := b.inspect(&plain, newInspectColors(false)); err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
	if err := b.inspect(&colored, newInspectColors(true)); err != nil {
		t.Fatalf("inspect failed: %v", err)
	}

	if strings.Contains(plain.String(), "\x1b[") {
		t.Fatalf("expected no escape codes, got %q", plain.String())
	}
	for _, want := range []string{"\x1b[32m\"abcd\"", "\x1b[36m\"ef\"", "\x1b[31m\"\\x00\"", "\x1b[0m"} {
		if !strings.Contains(colored.String(), want) {
			t.Fatalf("expected %q in colored dump, got %q", want, colored.String())
		}
	}
	if b.Layout() != before || b.String() != "abcdef" {
		t.Fatalf("inspect modified the buffer: %+v %q", b.Layout(), b.String())
	}
}

func TestIsTerminal(t *testing.T) {
	if isTerminal(&bytes.Buffer{}) {
		t.Fatal("bytes.Buffer reported as a terminal")
	}
}
