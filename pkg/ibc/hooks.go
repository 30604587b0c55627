package ibc

import "time"

// Hook is a marker interface, mirroring franz-go's Hook/hooks.each pattern:
// Config.WithHooks accepts anything satisfying Hook, and each call site
// type-asserts for the specific hook interfaces it cares about, so a single
// implementation can opt into as many or as few events as it likes.
type Hook interface{}

// ConnectHook is called after a TCP connection to addr succeeds, before the
// handshake begins.
type ConnectHook interface {
	OnConnect(addr string)
}

// RedirectHook is called when the handshake ack redirects the client to a
// new address.
type RedirectHook interface {
	OnRedirect(from, to string)
}

// DisconnectHook is called once, when the connection is torn down for any
// reason (caller Close, peer close, or a transport/decode error).
type DisconnectHook interface {
	OnDisconnect(err error)
}

// WriteHook is called after a frame has been written to the wire.
type WriteHook interface {
	OnWrite(bytesWritten int, writeTime time.Duration)
}

// ReadHook is called after a frame has been read, before it is decoded.
type ReadHook interface {
	OnRead(bytesRead int, readTime time.Duration)
}

// hooks is an ordered list of registered Hook values; each exported method
// walks the list once and fires whichever typed interface matches, exactly
// like franz-go's hooks.each.
type hooks []Hook

func (hs hooks) each(fn func(Hook)) {
	for _, h := range hs {
		fn(h)
	}
}

func (hs hooks) onConnect(addr string) {
	hs.each(func(h Hook) {
		if h, ok := h.(ConnectHook); ok {
			h.OnConnect(addr)
		}
	})
}

func (hs hooks) onRedirect(from, to string) {
	hs.each(func(h Hook) {
		if h, ok := h.(RedirectHook); ok {
			h.OnRedirect(from, to)
		}
	})
}

func (hs hooks) onDisconnect(err error) {
	hs.each(func(h Hook) {
		if h, ok := h.(DisconnectHook); ok {
			h.OnDisconnect(err)
		}
	})
}

func (hs hooks) onWrite(n int, d time.Duration) {
	hs.each(func(h Hook) {
		if h, ok := h.(WriteHook); ok {
			h.OnWrite(n, d)
		}
	})
}

func (hs hooks) onRead(n int, d time.Duration) {
	hs.each(func(h Hook) {
		if h, ok := h.(ReadHook); ok {
			h.OnRead(n, d)
		}
	})
}
