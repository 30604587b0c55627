package ibc

import "time"

// Config holds the tunables for Dial. The zero value is not usable directly;
// build one with NewConfig and Option funcs, the way franz-go builds a
// kgo.Client from kgo.Opt values.
type Config struct {
	addr     string
	clientID int32

	minVersion int32
	maxVersion int32
	extraAuth  bool

	// RedirectLimit caps how many times a connect-redirect ack may be
	// followed before giving up with ErrTooManyRedirect. The reference
	// clients hardcode this at 2; SPEC_FULL exposes it as configurable.
	redirectLimit int

	dialTimeout    time.Duration
	handshakeTimeout time.Duration

	// broadcastBufferCap sizes the Notifications and RawResponses channels.
	// A slow consumer drops messages rather than stalling the read loop.
	broadcastBufferCap int

	logger Logger
	hooks  hooks
}

// Option configures a Config. Functional options mirror the teacher's
// kgo.Opt convention of building a client from an ordered slice of closures.
type Option func(*Config)

// NewConfig returns a Config for addr ("host:port") with the reference
// client's defaults: protocol versions 100..187, a 2-redirect cap, 10s
// connect/handshake timeouts, and a no-op logger.
func NewConfig(addr string, opts ...Option) *Config {
	c := &Config{
		addr:               addr,
		minVersion:         100,
		maxVersion:         187,
		redirectLimit:      2,
		dialTimeout:        10 * time.Second,
		handshakeTimeout:   10 * time.Second,
		broadcastBufferCap: 256,
		logger:             nopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithClientID sets the client id sent in StartApi. Default 0.
func WithClientID(id int32) Option { return func(c *Config) { c.clientID = id } }

// WithVersionRange overrides the advertised handshake version range.
func WithVersionRange(min, max int32) Option {
	return func(c *Config) { c.minVersion, c.maxVersion = min, max }
}

// WithExtraAuth enables the VerifyAndAuth flow; required before calling
// Client.VerifyAndAuth.
func WithExtraAuth(v bool) Option { return func(c *Config) { c.extraAuth = v } }

// WithRedirectLimit overrides the number of connect-redirects to follow
// before returning ErrTooManyRedirect. Default 2.
func WithRedirectLimit(n int) Option { return func(c *Config) { c.redirectLimit = n } }

// WithDialTimeout overrides the TCP connect timeout. Default 10s.
func WithDialTimeout(d time.Duration) Option { return func(c *Config) { c.dialTimeout = d } }

// WithHandshakeTimeout overrides the time allowed for the connect handshake,
// including redirects, to reach Ready. Default 10s.
func WithHandshakeTimeout(d time.Duration) Option {
	return func(c *Config) { c.handshakeTimeout = d }
}

// WithBroadcastBufferCap overrides the capacity of the Notifications and
// RawResponses channels. Default 256.
func WithBroadcastBufferCap(n int) Option { return func(c *Config) { c.broadcastBufferCap = n } }

// WithLogger sets the Logger the client reports connection lifecycle and
// dispatch events to. Default, and a nil l, discards everything.
func WithLogger(l Logger) Option {
	return func(c *Config) {
		if l == nil {
			l = nopLogger{}
		}
		c.logger = l
	}
}

// WithHooks registers hs to observe connect/redirect/disconnect/read/write
// events. Each hook only needs to implement the specific interfaces
// (ConnectHook, ReadHook, ...) it cares about.
func WithHooks(hs ...Hook) Option {
	return func(c *Config) { c.hooks = append(c.hooks, hs...) }
}
