package folds

import (
	"io"
	"testing"
)

func TestReaderStreamsAllFragmentBytes(t *testing.T) {
	seq := Texts("Hello", " ", "World")
	content, err := io.ReadAll(NewReader(seq))
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	want, err := Concat(seq)
	if err != nil {
		t.Fatalf("Concat failed: %v", err)
	}
	if string(content) != want {
		t.Fatalf("reader content mismatch: got %q want %q", string(content), want)
	}
}

func TestReaderWithSmallReadBuffer(t *testing.T) {
	r := NewReader(Texts("abcdef"))
	p := make([]byte, 2)
	var collected []byte
	for {
		n, err := r.Read(p)
		collected = append(collected, p[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Read failed: %v", err)
		}
	}
	if string(collected) != "abcdef" {
		t.Fatalf("chunked read mismatch: got %q want %q", string(collected), "abcdef")
	}
}

func TestReaderOfEmptySequence(t *testing.T) {
	r := NewReader(Texts())
	n, err := r.Read(make([]byte, 8))
	if n != 0 || err != io.EOF {
		t.Fatalf("expected immediate EOF, got n=%d err=%v", n, err)
	}
}

func TestReaderSkipsEmptyFragments(t *testing.T) {
	content, err := io.ReadAll(NewReader(Texts("", "a", "", "b")))
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if string(content) != "ab" {
		t.Fatalf("unexpected content: got %q want %q", string(content), "ab")
	}
}
