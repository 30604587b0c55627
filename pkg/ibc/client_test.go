package ibc

import (
	"bufio"
	"context"
	"encoding/binary"
	"net"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/fourbytes/ibtws-go/pkg/twsbin"
	"github.com/fourbytes/ibtws-go/pkg/twsframe"
	"github.com/fourbytes/ibtws-go/pkg/twsmsg"
)

// fakeTWS simulates just enough of a TWS/Gateway socket for an end-to-end
// Dial + request/response test: it answers the handshake, sends the two
// bootstrap pushes, and then replies to whatever requests send(reply)
// is called with, matched in arrival order.
type fakeTWS struct {
	t    *testing.T
	nc   net.Conn
	br   *bufio.Reader
	reqs chan []byte
}

func newFakeTWS(t *testing.T) (addr string, serverReady <-chan *fakeTWS) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen: %v", err)
	}
	ready := make(chan *fakeTWS, 1)
	go func() {
		defer ln.Close()
		nc, err := ln.Accept()
		if err != nil {
			return
		}
		f := &fakeTWS{t: t, nc: nc, br: bufio.NewReader(nc), reqs: make(chan []byte, 32)}

		prelude := make([]byte, 4)
		if _, err := readFull(f.br, prelude); err != nil {
			return
		}
		if _, err := f.readFrame(); err != nil { // handshake request
			return
		}
		if err := f.writeFrame(handshakeAckPayload(151, "20260730 00:00:00")); err != nil {
			return
		}
		if _, err := f.readFrame(); err != nil { // StartApi
			return
		}

		ready <- f

		go func() {
			for {
				frame, err := f.readFrame()
				if err != nil {
					close(f.reqs)
					return
				}
				f.reqs <- frame
			}
		}()
	}()
	return ln.Addr().String(), ready
}

func (f *fakeTWS) readFrame() ([]byte, error) {
	var lenBuf [4]byte
	if _, err := readFull(f.br, lenBuf[:]); err != nil {
		return nil, err
	}
	n := binary.BigEndian.Uint32(lenBuf[:])
	payload := make([]byte, n)
	_, err := readFull(f.br, payload)
	return payload, err
}

func (f *fakeTWS) writeFrame(payload []byte) error {
	framed, err := twsframe.Encode(payload)
	if err != nil {
		return err
	}
	_, err = f.nc.Write(framed)
	return err
}

func (f *fakeTWS) sendBootstrap() {
	w := twsbin.NewWriter(nil)
	w.PushInt(9) // nextValidID opcode
	w.PushInt(1) // wire version
	w.PushInt(100)
	f.writeFrame(w.Buf)

	w = twsbin.NewWriter(nil)
	w.PushInt(15) // managedAccts opcode
	w.PushInt(1)
	_ = w.PushString("DU1000000")
	f.writeFrame(w.Buf)
}

func dialAgainstFake(t *testing.T, opts ...Option) (*Client, *fakeTWS) {
	t.Helper()
	addr, ready := newFakeTWS(t)

	var c *Client
	var dialErr error
	dialDone := make(chan struct{})
	go func() {
		defer close(dialDone)
		cfg := NewConfig(addr, append([]Option{WithHandshakeTimeout(2 * time.Second)}, opts...)...)
		c, dialErr = Dial(cfg)
	}()

	f := <-ready
	f.sendBootstrap()
	<-dialDone
	if dialErr != nil {
		t.Fatalf("Dial: %v", dialErr)
	}
	return c, f
}

func TestDialBootstrapsServerVersionAndAccounts(t *testing.T) {
	c, _ := dialAgainstFake(t)
	defer c.Close()

	if c.ServerVersion() != 151 {
		t.Errorf("ServerVersion() = %d, want 151", c.ServerVersion())
	}
	accts := c.Accounts()
	if len(accts) != 1 || accts[0] != "DU1000000" {
		t.Errorf("Accounts() = %v, want [DU1000000]", accts)
	}
}

func TestRequestOneRoundTrip(t *testing.T) {
	c, f := dialAgainstFake(t)
	defer c.Close()

	go func() {
		<-f.reqs // ReqCurrentTime
		w := twsbin.NewWriter(nil)
		w.PushInt(49) // currentTime opcode
		w.PushInt(1)
		w.PushLong(1234567890)
		f.writeFrame(w.Buf)
	}()

	resp, err := c.RequestOne(context.Background(), &twsmsg.ReqCurrentTime{})
	if err != nil {
		t.Fatalf("RequestOne: %v", err)
	}
	ct, ok := resp.(*twsmsg.CurrentTimeMsg)
	if !ok {
		t.Fatalf("got %T, want *twsmsg.CurrentTimeMsg", resp)
	}
	if ct.Time != 1234567890 {
		t.Errorf("Time = %d, want 1234567890\nfull response: %s", ct.Time, spew.Sdump(resp))
	}
}

func TestErrMsgCancelsExactlyOneWaiter(t *testing.T) {
	c, f := dialAgainstFake(t)
	defer c.Close()

	ch, reqID, err := c.ReqMktData(twsmsg.Contract{Symbol: "AAPL", SecType: "STK", Exchange: "SMART", Currency: "USD"}, "", false, false)
	if err != nil {
		t.Fatalf("ReqMktData: %v", err)
	}

	<-f.reqs // the ReqMktData frame itself

	w := twsbin.NewWriter(nil)
	w.PushInt(4) // errMsg opcode
	w.PushInt(2) // wireVersion
	w.PushInt(reqID)
	w.PushInt(200)
	_ = w.PushString("No security definition has been found")
	f.writeFrame(w.Buf)

	select {
	case resp, ok := <-ch:
		if !ok {
			t.Fatal("channel closed before delivering the ErrMsg itself")
		}
		if _, isErr := resp.(*twsmsg.ErrMsg); !isErr {
			t.Fatalf("got %T, want *twsmsg.ErrMsg", resp)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the ErrMsg")
	}

	select {
	case _, ok := <-ch:
		if ok {
			t.Error("expected the mkt data channel to be closed after its ErrMsg, got another value")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the mkt data channel to close")
	}
}

func TestRawResponsesObservesBroadcastWithNoWaiter(t *testing.T) {
	c, f := dialAgainstFake(t)
	defer c.Close()

	raw := c.RawResponses()

	w := twsbin.NewWriter(nil)
	w.PushInt(8) // acctUpdateTime opcode
	w.PushInt(1)
	_ = w.PushString("12:00")
	f.writeFrame(w.Buf)

	select {
	case resp, ok := <-raw:
		if !ok {
			t.Fatal("RawResponses closed before delivering the broadcast")
		}
		if _, isTime := resp.(*twsmsg.AcctUpdateTimeMsg); !isTime {
			t.Fatalf("got %T, want *twsmsg.AcctUpdateTimeMsg", resp)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the broadcast on RawResponses")
	}
}

func TestCloseUnblocksPendingWaiters(t *testing.T) {
	c, _ := dialAgainstFake(t)

	ch, err := c.ReqPositions()
	if err != nil {
		t.Fatalf("ReqPositions: %v", err)
	}

	c.Close()

	select {
	case _, ok := <-ch:
		if ok {
			t.Error("expected positions channel closed after Close(), got a value")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for channel close after Close()")
	}
}
