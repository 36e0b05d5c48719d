package folds

import (
	"io"
	"iter"
)

// NewReader returns a reader for the bytes of a fragment sequence, streamed
// in traversal order.
//
// The reader holds a running traversal over seq; the usual immutability
// precondition applies until the reader has been drained.
func NewReader[F Fragment](seq Sequence[F]) io.Reader {
	if seq == nil {
		return &seqReader[F]{eof: true}
	}
	next, stop := iter.Pull(seq.All())
	return &seqReader[F]{next: next, stop: stop}
}

type seqReader[F Fragment] struct {
	next func() (F, bool)
	stop func()
	buf  []byte
	eof  bool
}

func (sr *seqReader[F]) Read(p []byte) (n int, err error) {
	for n < len(p) {
		if len(sr.buf) == 0 {
			if !sr.fill() {
				break
			}
		}
		k := copy(p[n:], sr.buf)
		sr.buf = sr.buf[k:]
		n += k
	}
	if n == 0 && sr.eof {
		return 0, io.EOF
	}
	return n, nil
}

// fill advances to the next non-empty fragment, reporting false at the end
// of the sequence.
func (sr *seqReader[F]) fill() bool {
	for {
		if sr.eof {
			return false
		}
		frag, ok := sr.next()
		if !ok {
			sr.eof = true
			sr.stop()
			return false
		}
		if frag.Len() == 0 {
			continue
		}
		sr.buf = frag.AppendTo(sr.buf[:0])
		return true
	}
}
