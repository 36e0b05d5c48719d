package counters

import (
	"fmt"
	"regexp"

	"github.com/npillmayer/folds"
)

// DelimiterValue is the accumulator of a delimiter-counting fold. It carries
// the match count together with the unprocessed bytes trailing the last
// match, which are needed to recognize delimiters spanning a fragment
// boundary.
type DelimiterValue struct {
	count int
	carry []byte
}

// Count returns the number of delimiter matches seen so far.
func (v DelimiterValue) Count() int {
	return v.count
}

// Delimiters returns a reducer counting non-overlapping matches of a regular
// expression pattern across the fragments of a sequence, including matches
// which span fragment boundaries.
//
// Bytes after the last match of a fragment remain unprocessed and are
// reconsidered together with the following fragment. Patterns with unbounded
// matches (like `x+`) may therefore count a match reaching across a boundary
// as two.
//
// Returns ErrIllegalDelimiterPattern if the pattern does not compile or
// matches the empty string.
func Delimiters[F folds.Fragment](pattern string) (folds.Reducer[DelimiterValue, F], error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		tracer().Errorf("delimiter reducer: cannot compile regular expression input")
		return nil, fmt.Errorf("%w: %v", ErrIllegalDelimiterPattern, err)
	}
	if re.MatchString("") {
		tracer().Errorf("delimiter reducer: regular expression matches empty string")
		return nil, ErrIllegalDelimiterPattern
	}
	return func(acc DelimiterValue, frag F) DelimiterValue {
		window := frag.AppendTo(append([]byte(nil), acc.carry...))
		locs := re.FindAllIndex(window, -1)
		acc.count += len(locs)
		if len(locs) == 0 {
			acc.carry = window
			return acc
		}
		acc.carry = window[locs[len(locs)-1][1]:]
		return acc
	}, nil
}

// LineCount returns a reducer counting the newline characters of a textual
// sequence. Multiple consecutive newlines count as multiple empty lines.
func LineCount[F folds.Fragment]() folds.Reducer[DelimiterValue, F] {
	r, err := Delimiters[F](`\n`)
	if err != nil {
		panic("counters: newline pattern must compile")
	}
	return r
}

// CountDelimiters folds a sequence with a delimiter reducer for pattern and
// returns the resulting match count.
func CountDelimiters[F folds.Fragment](seq folds.Sequence[F], pattern string) (int, error) {
	r, err := Delimiters[F](pattern)
	if err != nil {
		return 0, err
	}
	return folds.Fold(seq, DelimiterValue{}, r).Count(), nil
}
