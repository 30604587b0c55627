package ibc

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fourbytes/ibtws-go/pkg/twserr"
	"github.com/fourbytes/ibtws-go/pkg/twsmsg"
)

// Client is the async TWS/Gateway client: one TCP connection multiplexed
// across any number of concurrent callers, grounded on the request/response
// correlation kgo's broker.go uses for its single Kafka connection (a
// promisedReq/promisedResp table drained by a dedicated goroutine) rather
// than on a connection pool, since TWS speaks exactly one stream per
// client id.
type Client struct {
	cfg *Config
	t   *transport
	ctx *twsmsg.Context

	waiters *waiterTable
	nextID  int32

	writeMu sync.Mutex

	notifications chan *twserr.Notification
	raw           chan twsmsg.Response

	closeOnce sync.Once
	done      chan struct{}
	closeErr  atomic.Value // error
}

// Dial connects, performs the handshake (following redirects), sends
// StartApi, and blocks until the bootstrap NextValidId and ManagedAccts
// messages have both arrived or cfg.handshakeTimeout elapses.
func Dial(cfg *Config) (*Client, error) {
	res, err := connect(cfg)
	if err != nil {
		return nil, err
	}

	c := &Client{
		cfg:           cfg,
		t:             res.t,
		ctx:           res.ctx,
		waiters:       newWaiterTable(),
		notifications: make(chan *twserr.Notification, cfg.broadcastBufferCap),
		raw:           make(chan twsmsg.Response, cfg.broadcastBufferCap),
		done:          make(chan struct{}),
	}

	nextValidIDKey, managedAcctsKey := twsmsg.BootstrapKeys()
	bootstrap := newWaiter(waiterMulti)
	c.waiters.register(nextValidIDKey, bootstrap)
	acctsReady := newWaiter(waiterMulti)
	c.waiters.register(managedAcctsKey, acctsReady)

	go c.readLoop()

	if err := c.awaitBootstrap(bootstrap, acctsReady); err != nil {
		c.teardown(err)
		return nil, err
	}
	return c, nil
}

func (c *Client) awaitBootstrap(idWaiter, acctsWaiter *waiter) error {
	deadline := time.After(c.cfg.handshakeTimeout)
	gotID, gotAccts := false, false
	for !gotID || !gotAccts {
		select {
		case _, ok := <-idWaiter.ch:
			if !ok {
				return fmt.Errorf("ibc: %w", ErrConnDead)
			}
			gotID = true
		case _, ok := <-acctsWaiter.ch:
			if !ok {
				return fmt.Errorf("ibc: %w", ErrConnDead)
			}
			gotAccts = true
		case <-deadline:
			return fmt.Errorf("ibc: %w", ErrMissingFrame)
		case <-c.done:
			return c.closeErrVal()
		}
	}
	return nil
}

// NextRequestID returns the next id to stamp on a request, drawn from a
// monotonic counter seeded by the server's bootstrap NextValidId.
func (c *Client) NextRequestID() int32 {
	return atomic.AddInt32(&c.nextID, 1) - 1 + c.ctx.NextValidID()
}

// Notifications returns the channel server notifications unrelated to any
// outstanding request (ErrMsg with id -1) are delivered on. Callers that
// don't read it simply stop receiving them once its buffer fills.
func (c *Client) Notifications() <-chan *twserr.Notification { return c.notifications }

// RawResponses returns a channel receiving every decoded response the read
// loop observes, independent of whatever waiter (if any) it is also routed
// to — the Go equivalent of a broadcast-receiver clone, for callers that
// want the raw stream of unsolicited broadcasts (portfolio/account-value
// rows, unresolved commission reports) rather than per-request delivery.
// A slow consumer drops messages rather than stalling the read loop; the
// channel closes when the connection does.
func (c *Client) RawResponses() <-chan twsmsg.Response { return c.raw }

// Accounts returns the managed account codes observed during bootstrap.
func (c *Client) Accounts() []string { return c.ctx.Accounts() }

// ServerVersion returns the negotiated protocol version.
func (c *Client) ServerVersion() int32 { return c.ctx.ServerVersion() }

// Close tears down the connection and unblocks every pending waiter with
// ErrClosed.
func (c *Client) Close() error {
	c.teardown(ErrClosed)
	return nil
}

func (c *Client) teardown(err error) {
	c.closeOnce.Do(func() {
		c.closeErr.Store(err)
		close(c.done)
		c.t.close()
		c.waiters.closeAll()
		c.cfg.hooks.onDisconnect(err)
	})
}

func (c *Client) closeErrVal() error {
	if v := c.closeErr.Load(); v != nil {
		return v.(error)
	}
	return nil
}

// send encodes req, registers a waiter for its reply per the DispatchID
// EncodeMessage assigns it, and writes the frame. Writes are serialized by
// writeMu; TWS has no pipelining concept beyond request ids, so a single
// lock is enough (kgo similarly serializes writes per broker connection
// while letting reads fan in concurrently).
func (c *Client) send(req twsmsg.Request) (*waiter, error) {
	select {
	case <-c.done:
		return nil, c.closeErrVal()
	default:
	}

	payload, dispatch, err := twsmsg.EncodeMessage(c.ctx, req)
	if err != nil {
		return nil, err
	}

	var kind waiterKind
	switch {
	case dispatch.IsOneshot():
		kind = waiterOneshot
	case dispatch.IsStream():
		kind = waiterStream
	default: // Multi, Global: open until an end-of-stream marker, an ErrMsg, or connection death
		kind = waiterMulti
	}
	w := newWaiter(kind)
	c.waiters.register(dispatch.Value(), w)

	start := time.Now()
	c.writeMu.Lock()
	err = c.t.writeFramed(payload)
	c.writeMu.Unlock()
	c.cfg.hooks.onWrite(len(payload), time.Since(start))
	if err != nil {
		c.waiters.remove(dispatch.Value())
		c.teardown(fmt.Errorf("ibc: %w: %v", ErrConnDead, err))
		return nil, c.closeErrVal()
	}
	return w, nil
}

// sendAndWaitOne is the building block for requests treated as a single
// round trip: RequestOne in requests.go. Cancel* helpers do not use it; they
// go through sendFireAndForget.
func (c *Client) sendAndWaitOne(ctx context.Context, req twsmsg.Request) (twsmsg.Response, error) {
	w, err := c.send(req)
	if err != nil {
		return nil, err
	}
	select {
	case resp, ok := <-w.ch:
		if !ok {
			return nil, c.closeErrVal()
		}
		if em, ok := resp.(*twsmsg.ErrMsg); ok {
			return nil, apiErrorFrom(em)
		}
		return resp, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-c.done:
		return nil, c.closeErrVal()
	}
}

// sendAndStream is the building block for Stream/Multi requests: it returns
// the raw response channel, which the typed wrapper in requests.go drains
// and retypes. The channel closes when the stream's end-marker arrives, an
// ErrMsg cancels it, or the connection dies.
func (c *Client) sendAndStream(req twsmsg.Request) (<-chan twsmsg.Response, error) {
	w, err := c.send(req)
	if err != nil {
		return nil, err
	}
	return w.ch, nil
}

func apiErrorFrom(em *twsmsg.ErrMsg) error {
	return &twserr.APIError{
		ReqID:        em.ID,
		Code:         em.ErrorCode,
		Message:      em.ErrorMessage,
		AdvancedJSON: em.AdvancedOrderRejectJSON,
	}
}

// readLoop is the client's single reader goroutine: it owns framing and
// decode, and is the only writer to c.waiters' delivery side. It exits,
// tearing the connection down, on the first read or decode error — mirroring
// kgo's per-broker response-reading goroutine, simplified to one connection.
func (c *Client) readLoop() {
	// c.raw and c.notifications are only ever sent to from this goroutine,
	// so closing them here (rather than in teardown, which other goroutines
	// call concurrently) can't race a send against a close.
	defer close(c.raw)
	defer close(c.notifications)
	for {
		start := time.Now()
		frame, err := c.t.readFrame()
		if err != nil {
			c.teardown(fmt.Errorf("ibc: %w: %v", ErrConnDead, err))
			return
		}
		c.cfg.hooks.onRead(len(frame), time.Since(start))
		resp, err := twsmsg.DecodeMessage(c.ctx, frame)
		if err != nil {
			c.cfg.logger.Warnf("ibc: decode error, closing: %v", err)
			c.teardown(err)
			return
		}

		select {
		case c.raw <- resp:
		default:
		}

		if em, ok := resp.(*twsmsg.ErrMsg); ok && em.ID == -1 {
			select {
			case c.notifications <- &twserr.Notification{Code: em.ErrorCode, Message: em.ErrorMessage}:
			default:
			}
			continue
		}

		if !c.waiters.deliver(resp) {
			c.cfg.logger.Debugf("ibc: no waiter for %T, dropped", resp)
		}
	}
}
