package envelope

import "errors"

// ErrMalformed is returned when an envelope does not match either wire
// format: a bad separator, invalid base64, a truncated buffer or an
// impossible declared salt length.
var ErrMalformed = errors.New("malformed envelope")
