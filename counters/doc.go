/*
Package counters provides some pre-manufactured reducers on sequences.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package counters

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'folds'
func tracer() tracing.Trace {
	return tracing.Select("folds")
}
