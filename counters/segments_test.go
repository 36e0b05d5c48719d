package counters

import (
	"testing"

	"github.com/npillmayer/folds"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

func TestGraphemesCountsClusters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "folds")
	defer teardown()
	grapheme.SetupGraphemeClasses()

	seq := folds.Texts("Hello", " World")
	if got := folds.Fold(seq, 0, Graphemes[folds.Text]()); got != 11 {
		t.Fatalf("unexpected grapheme count: got %d want 11", got)
	}
}

func TestWidthOfLatinText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "folds")
	defer teardown()
	grapheme.SetupGraphemeClasses()

	seq := folds.Texts("abc", "de")
	if got := folds.Fold(seq, 0, Width[folds.Text](uax11.LatinContext)); got != 5 {
		t.Fatalf("unexpected width: got %d want 5", got)
	}
}

func TestLineWrapSegments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "folds")
	defer teardown()

	seq := folds.Texts("The quick ", "brown fox")
	n, err := LineWrapSegments(seq)
	if err != nil {
		t.Fatalf("LineWrapSegments failed: %v", err)
	}
	// "The ", "quick ", "brown ", "fox" — independent of fragmentation
	if n != 4 {
		t.Fatalf("unexpected segment count: got %d want 4", n)
	}
}

func TestLineWrapSegmentsOfEmptySequence(t *testing.T) {
	n, err := LineWrapSegments(folds.Texts())
	if err != nil {
		t.Fatalf("LineWrapSegments failed: %v", err)
	}
	if n != 0 {
		t.Fatalf("unexpected segment count for empty sequence: got %d want 0", n)
	}
}
