package pathtidy

import (
	"strconv"
	"time"
)

// NullValueHandler decides what a sanitizer returns when sanitization would
// otherwise produce an empty string. The triggering validation error is
// passed in; the handler either supplies a fallback value or returns an
// error to propagate.
type NullValueHandler func(e *ValidationError) (string, error)

// ReturnEmptyString is the default handler: an empty result stays empty.
func ReturnEmptyString(_ *ValidationError) (string, error) {
	return "", nil
}

// RaiseError propagates the triggering validation error instead of
// substituting a fallback value.
func RaiseError(e *ValidationError) (string, error) {
	return "", e
}

// ReturnTimestamp substitutes the current Unix timestamp so the result is a
// non-empty, always-legal name.
func ReturnTimestamp(_ *ValidationError) (string, error) {
	return strconv.FormatInt(time.Now().Unix(), 10), nil
}
