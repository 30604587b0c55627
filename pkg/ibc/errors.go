package ibc

import "github.com/fourbytes/ibtws-go/pkg/twserr"

// Re-exported so callers can errors.Is against these without importing
// twserr directly, mirroring how kgo re-exports kerr codes callers need to
// compare against.
var (
	ErrClosed                 = twserr.ErrClientClosed
	ErrConnDead               = twserr.ErrConnDead
	ErrTooManyRedirect        = twserr.ErrTooManyRedirect
	ErrInvalidHandshakeAck    = twserr.ErrInvalidHandshakeAck
	ErrInvalidRedirectAddress = twserr.ErrInvalidRedirectAddress
	ErrMissingFrame           = twserr.ErrMissingFrame
)
