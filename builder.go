package folds

// Builder incrementally stages fragments and finalizes them into a sequence.
//
// Builder collects fragments at either end and materializes the sequence
// only when Sequence() is called. This keeps construction logic in one place
// for clients which assemble texts from parts, e.g. the html subpackage.
//
// The empty instance is a valid builder, but clients may use NewBuilder.
type Builder struct {
	// front keeps prepended fragments in reverse logical order.
	front []Fragment
	// back keeps appended fragments in logical order.
	back []Fragment

	done  bool
	dirty bool
	seq   Slice[Fragment]
}

// NewBuilder creates a new and empty sequence builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Sequence returns the sequence built from all staged fragments.
//
// It is illegal to continue adding fragments after Sequence has been called,
// but Sequence may be called multiple times.
func (b *Builder) Sequence() Sequence[Fragment] {
	if b == nil {
		return Slice[Fragment](nil)
	}
	if b.dirty {
		b.seq = FromSlice(b.orderedFragments())
		b.dirty = false
	}
	b.done = true
	if b.seq.Len() == 0 {
		tracer().Debugf("sequence builder: sequence is empty")
	}
	return b.seq
}

// Concat finalizes the staged build and joins it into one string.
func (b *Builder) Concat() (string, error) {
	return Concat(b.Sequence())
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder) Reset() {
	b.front = nil
	b.back = nil
	b.done = false
	b.dirty = false
	b.seq = nil
}

// Append appends a fragment to the staged build. Empty fragments are
// dropped.
func (b *Builder) Append(frag Fragment) error {
	if b == nil || frag == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrBuildCompleted
	}
	if frag.Len() == 0 {
		return nil
	}
	b.back = append(b.back, frag)
	b.dirty = true
	return nil
}

// Prepend prepends a fragment to the staged build. Empty fragments are
// dropped.
func (b *Builder) Prepend(frag Fragment) error {
	if b == nil || frag == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrBuildCompleted
	}
	if frag.Len() == 0 {
		return nil
	}
	b.front = append(b.front, frag)
	b.dirty = true
	return nil
}

// AppendString appends text to the staged build.
func (b *Builder) AppendString(text string) error {
	if b == nil {
		return ErrIllegalArguments
	}
	return b.Append(Text(text))
}

// PrependString prepends text to the staged build.
func (b *Builder) PrependString(text string) error {
	if b == nil {
		return ErrIllegalArguments
	}
	return b.Prepend(Text(text))
}

func (b *Builder) orderedFragments() []Fragment {
	total := len(b.front) + len(b.back)
	if total == 0 {
		return nil
	}
	out := make([]Fragment, 0, total)
	for i := len(b.front) - 1; i >= 0; i-- {
		out = append(out, b.front[i])
	}
	out = append(out, b.back...)
	return out
}
