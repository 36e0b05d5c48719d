package folds

import "math"

// Fragment is a textual sequence element.
//
// A fragment knows its byte length and can copy its bytes onto a write
// cursor. Both operations must be consistent: AppendTo must append exactly
// Len bytes. The fragment's bytes are assumed to outlive any fold over the
// containing sequence.
type Fragment interface {
	// Len returns the fragment length in bytes.
	Len() int
	// AppendTo appends the fragment bytes to buf and returns the advanced
	// write cursor.
	AppendTo(buf []byte) []byte
}

// Text is a plain string fragment.
type Text string

// Len returns the text length in bytes.
func (t Text) Len() int {
	return len(t)
}

// AppendTo appends the text bytes to buf.
func (t Text) AppendTo(buf []byte) []byte {
	return append(buf, t...)
}

// String returns the text as a Go string.
func (t Text) String() string {
	return string(t)
}

// Texts creates a contiguous sequence of string fragments.
func Texts(ss ...string) Slice[Text] {
	frags := make([]Text, len(ss))
	for i, s := range ss {
		frags[i] = Text(s)
	}
	return FromSlice(frags)
}

// Concat joins all fragments of a sequence into one string, in traversal
// order, with no separator.
//
// Concat folds the sequence twice: a first pass sums the fragment lengths,
// then a buffer of exactly that size is allocated and a second pass copies
// each fragment onto the write cursor. Both passes must see an identical
// sequence; mutating the sequence in between is a caller error, detected
// after the copy pass and reported as ErrFragmentsChanged.
//
// A nil or empty sequence yields the empty string. If the summed fragment
// lengths are negative or overflow, no buffer is written and Concat returns
// ErrFragmentSize.
func Concat[F Fragment](seq Sequence[F]) (string, error) {
	if seq == nil {
		return "", nil
	}
	size := Fold(seq, 0, addLength[F])
	if size < 0 {
		tracer().Errorf("concat: fragment lengths sum to an invalid size")
		return "", ErrFragmentSize
	}
	if size == 0 {
		return "", nil
	}
	buf := Fold(seq, make([]byte, 0, size), appendFragment[F])
	if len(buf) != size {
		tracer().Errorf("concat: copied %d bytes, measured %d", len(buf), size)
		return "", ErrFragmentsChanged
	}
	return string(buf), nil
}

// addLength is the length-accumulation reducer used by the measuring pass.
//
// Invalid lengths are flagged by driving the accumulator negative, keeping
// the reducer pure; the negative value propagates through the remaining
// applications.
func addLength[F Fragment](acc int, frag F) int {
	if acc < 0 {
		return acc
	}
	l := frag.Len()
	if l < 0 || acc > math.MaxInt-l {
		return -1
	}
	return acc + l
}

// appendFragment is the copy-and-advance reducer used by the copying pass.
// The accumulator is the write cursor into the output buffer.
func appendFragment[F Fragment](buf []byte, frag F) []byte {
	return frag.AppendTo(buf)
}
