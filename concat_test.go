package folds

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestConcatListFooBar(t *testing.T) {
	list := NewList(Text("foo"), Text("bar"))
	got, err := Concat(list)
	if err != nil {
		t.Fatalf("Concat failed: %v", err)
	}
	if got != "foobar" {
		t.Fatalf("unexpected concatenation: got %q want %q", got, "foobar")
	}
}

func TestConcatCountedHelloWorld(t *testing.T) {
	counted, err := FromCounted([]Text{"hello", "world", "spare"}, 2)
	if err != nil {
		t.Fatalf("FromCounted failed: %v", err)
	}
	got, err := Concat(counted)
	if err != nil {
		t.Fatalf("Concat failed: %v", err)
	}
	if got != "helloworld" {
		t.Fatalf("unexpected concatenation: got %q want %q", got, "helloworld")
	}
}

func TestConcatEmptySequence(t *testing.T) {
	got, err := Concat(Texts())
	if err != nil {
		t.Fatalf("Concat failed: %v", err)
	}
	if got != "" {
		t.Fatalf("concat of empty sequence: got %q want empty string", got)
	}
	var list *List[Text]
	got, err = Concat[Text](list)
	if err != nil {
		t.Fatalf("Concat of nil list failed: %v", err)
	}
	if got != "" {
		t.Fatalf("concat of nil list: got %q want empty string", got)
	}
}

func TestConcatLengthMatchesLengthFold(t *testing.T) {
	seq := Texts("He", "llo, ", "", "World")
	measured := Fold(seq, 0, func(acc int, frag Text) int {
		return acc + frag.Len()
	})
	got, err := Concat(seq)
	if err != nil {
		t.Fatalf("Concat failed: %v", err)
	}
	if len(got) != measured {
		t.Fatalf("length mismatch: len(concat)=%d, length fold=%d", len(got), measured)
	}
	if got != "Hello, World" {
		t.Fatalf("unexpected concatenation: got %q", got)
	}
}

func TestConcatIsShapeIndependent(t *testing.T) {
	contents := []Text{"one", "two", "three"}

	fromSlice, err := Concat(FromSlice(contents))
	if err != nil {
		t.Fatalf("Concat over slice failed: %v", err)
	}
	fromList, err := Concat(NewList(contents...))
	if err != nil {
		t.Fatalf("Concat over list failed: %v", err)
	}
	counted, err := FromCounted(contents, len(contents))
	if err != nil {
		t.Fatalf("FromCounted failed: %v", err)
	}
	fromCounted, err := Concat(counted)
	if err != nil {
		t.Fatalf("Concat over counted array failed: %v", err)
	}
	if fromSlice != fromList || fromList != fromCounted {
		t.Fatalf("concat depends on sequence shape: slice=%q list=%q counted=%q",
			fromSlice, fromList, fromCounted)
	}
	if fromSlice != "onetwothree" {
		t.Fatalf("unexpected concatenation: got %q", fromSlice)
	}
}

// brokenFragment reports a length inconsistent with the bytes it appends,
// standing in for a sequence mutated between the two concat passes.
type brokenFragment struct {
	claimed int
	actual  string
}

func (b brokenFragment) Len() int { return b.claimed }

func (b brokenFragment) AppendTo(buf []byte) []byte {
	return append(buf, b.actual...)
}

func TestConcatRejectsInvalidFragmentSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "folds")
	defer teardown()

	seq := FromSlice([]brokenFragment{{claimed: -1, actual: "x"}})
	if _, err := Concat[brokenFragment](seq); !errors.Is(err, ErrFragmentSize) {
		t.Fatalf("expected ErrFragmentSize, got %v", err)
	}
}

func TestConcatDetectsChangedFragments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "folds")
	defer teardown()

	seq := FromSlice([]brokenFragment{{claimed: 2, actual: "long"}})
	if _, err := Concat[brokenFragment](seq); !errors.Is(err, ErrFragmentsChanged) {
		t.Fatalf("expected ErrFragmentsChanged, got %v", err)
	}
}
