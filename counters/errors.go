package counters

import "errors"

var (
	// ErrIllegalDelimiterPattern signals a delimiter pattern which is empty or
	// matches the empty string.
	ErrIllegalDelimiterPattern = errors.New("counters: illegal delimiter pattern")
)
