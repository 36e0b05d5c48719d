package counters

import (
	"bufio"

	"github.com/npillmayer/folds"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

// Graphemes returns a reducer counting the user-perceived characters
// (grapheme clusters) of a textual sequence.
//
// Fragments are measured independently; fragment boundaries are assumed to
// coincide with grapheme boundaries.
func Graphemes[F folds.Fragment]() folds.Reducer[int, F] {
	return func(acc int, frag F) int {
		gstr := grapheme.StringFromString(string(frag.AppendTo(nil)))
		return acc + gstr.Len()
	}
}

// Width returns a reducer accumulating the fixed-width display width of a
// textual sequence, in 'en' units.
//
// context carries East Asian width conventions; a nil context is derived
// from the user environment.
func Width[F folds.Fragment](context *uax11.Context) folds.Reducer[int, F] {
	if context == nil {
		context = uax11.ContextFromEnvironment()
	}
	return func(acc int, frag F) int {
		gstr := grapheme.StringFromString(string(frag.AppendTo(nil)))
		return acc + uax11.StringWidth(gstr, context)
	}
}

// LineWrapSegments counts the segments between line-wrap opportunities
// (UAX#14) of a textual sequence's concatenated content.
//
// Unlike the per-fragment reducers, segmentation runs over the streamed
// bytes of the whole sequence, so wrap opportunities are found independently
// of how the text is fragmented.
func LineWrapSegments[F folds.Fragment](seq folds.Sequence[F]) (int, error) {
	if seq == nil || seq.Len() == 0 {
		return 0, nil
	}
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(folds.NewReader(seq)))
	n := 0
	for segmenter.Next() {
		n++
	}
	if err := segmenter.Err(); err != nil {
		tracer().Errorf("segment count: %v", err)
		return 0, err
	}
	return n, nil
}
