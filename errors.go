package datetime

import "errors"

// ErrInvalidOptionValue indicates an option value outside its allowed set.
var ErrInvalidOptionValue = errors.New("datetime: invalid option value")

// ErrInvalidLanguageTag indicates a requested locale that is not a
// structurally valid BCP-47 language tag.
var ErrInvalidLanguageTag = errors.New("datetime: invalid language tag")

// ErrInvalidTimeZone indicates a timezone identifier that either fails
// canonicalization or does not name a real zone.
var ErrInvalidTimeZone = errors.New("datetime: invalid time zone")

// ErrInvalidTimeValue indicates a NaN or out-of-range timestamp at format time.
var ErrInvalidTimeValue = errors.New("datetime: invalid time value")

// ErrWrongReceiver indicates an operation invoked on a value that carries no
// resolved configuration.
var ErrWrongReceiver = errors.New("datetime: receiver is not an initialized DateTimeFormat")

// ErrMissingLocaleData indicates the format engine could not build even a
// base-locale formatter. This is a deployment defect, not a caller error.
var ErrMissingLocaleData = errors.New("datetime: missing locale data")
