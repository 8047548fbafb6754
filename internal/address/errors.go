package address

import "errors"

// errUnknownKind is returned by Derive for a Kind value outside the four
// it recognizes.
var errUnknownKind = errors.New("address: unknown address kind")
