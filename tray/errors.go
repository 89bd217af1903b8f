package tray

import "errors"

// ErrInvalidParameter reports tray dimensions that cannot produce a valid
// solid. Check with errors.Is; the wrapped message names the failing
// precondition.
var ErrInvalidParameter = errors.New("invalid parameter")
