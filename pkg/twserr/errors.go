// Package twserr collects the error values and kinds the rest of the module
// surfaces to callers, mirroring the flat var-block-of-sentinel-errors style
// kgo uses (ErrBrokerDead, ErrConnDead, ErrUnknownRequestKey, ...) rather
// than a deep custom-error-type hierarchy.
package twserr

import (
	"errors"
	"fmt"
)

// Transport / protocol errors. These are fatal to the connection: every
// outstanding waiter observes them once the forwarder tasks unwind.
var (
	// ErrConnDead indicates the TCP connection failed or was closed,
	// locally or by the peer.
	ErrConnDead = errors.New("ibtws: connection is dead")

	// ErrInvalidHandshakeAck indicates the first frame received during
	// the handshake could not be parsed as a version/redirect ack.
	ErrInvalidHandshakeAck = errors.New("ibtws: invalid handshake ack")

	// ErrTooManyRedirect indicates the handshake redirected more times
	// than the configured limit.
	ErrTooManyRedirect = errors.New("ibtws: too many handshake redirects")

	// ErrMissingFrame indicates no frame arrived within the connect/
	// handshake timeout.
	ErrMissingFrame = errors.New("ibtws: timed out waiting for a frame")

	// ErrUnknownMessageType indicates a frame's leading message id does
	// not match any entry in the decode dispatch table.
	ErrUnknownMessageType = errors.New("ibtws: unknown message type")

	// ErrInvalidRedirectAddress indicates a server_version == 0 ack
	// carried an addr_or_time field that did not parse as host:port.
	ErrInvalidRedirectAddress = errors.New("ibtws: invalid redirect address")

	// ErrClientClosed indicates the caller attempted to use a client
	// whose multiplexer has already shut down.
	ErrClientClosed = errors.New("ibtws: client is closed")
)

// VersionLessError is a local, non-fatal error: the caller asked for a
// feature the negotiated server_version does not support. The request is
// never sent.
type VersionLessError struct {
	Feature    string
	MinVersion int32
	Have       int32
}

func (e *VersionLessError) Error() string {
	return fmt.Sprintf("ibtws: server version %d does not support %s (requires >= %d)", e.Have, e.Feature, e.MinVersion)
}

// APIError wraps an ErrMsg response whose id matched an outstanding
// request. It does not tear down the client; it is delivered only to the
// request it is correlated with.
type APIError struct {
	ReqID        int32
	Code         int32
	Message      string
	AdvancedJSON string // optional advancedOrderRejectJson, empty if absent
}

func (e *APIError) Error() string {
	if e.AdvancedJSON != "" {
		return fmt.Sprintf("ibtws: api error %d (req %d): %s [%s]", e.Code, e.ReqID, e.Message, e.AdvancedJSON)
	}
	return fmt.Sprintf("ibtws: api error %d (req %d): %s", e.Code, e.ReqID, e.Message)
}

// Notification wraps an ErrMsg response with id == -1: a server
// notification not tied to any outstanding request.
type Notification struct {
	Code    int32
	Message string
}

func (e *Notification) Error() string {
	return fmt.Sprintf("ibtws: notification %d: %s", e.Code, e.Message)
}
