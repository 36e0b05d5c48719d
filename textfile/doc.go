/*
Package textfile loads text files as fragment sequences.

Loading of larger files is done asynchronously, but this is transparent to
the client: the sequence can be folded right away, and fragment access will
block until the fragment's bytes have arrived. Clients interested in load
progress may subscribe to broadcast events.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'folds'
func tracer() tracing.Trace {
	return tracing.Select("folds")
}
