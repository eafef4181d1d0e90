package artifact

import "errors"

// ErrParse is returned when neither the outer QR envelope nor any of the
// inner envelope shapes can be parsed from the given bytes.
var ErrParse = errors.New("artifact: could not classify payload")
