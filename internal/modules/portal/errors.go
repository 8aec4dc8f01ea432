package portal

import "errors"

// ErrClientNotFound means the identity has no linked client row. This is
// an expected empty state with its own response code, not a failure.
var ErrClientNotFound = errors.New("no client linked to this account")
