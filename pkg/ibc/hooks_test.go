package ibc

import (
	"testing"
	"time"
)

type recordingHook struct {
	connects    []string
	redirects   [][2]string
	disconnects []error
	writes      int
	reads       int
}

func (h *recordingHook) OnConnect(addr string)     { h.connects = append(h.connects, addr) }
func (h *recordingHook) OnRedirect(from, to string) { h.redirects = append(h.redirects, [2]string{from, to}) }
func (h *recordingHook) OnDisconnect(err error)    { h.disconnects = append(h.disconnects, err) }
func (h *recordingHook) OnWrite(int, time.Duration) { h.writes++ }
func (h *recordingHook) OnRead(int, time.Duration)  { h.reads++ }

// connectOnlyHook implements just ConnectHook, to check each() doesn't
// panic on a hook that isn't also a WriteHook/ReadHook/etc.
type connectOnlyHook struct{ called bool }

func (h *connectOnlyHook) OnConnect(addr string) { h.called = true }

func TestHooksDispatchOnlyToImplementedInterfaces(t *testing.T) {
	full := &recordingHook{}
	partial := &connectOnlyHook{}
	hs := hooks{full, partial}

	hs.onConnect("127.0.0.1:7497")
	hs.onRedirect("127.0.0.1:7497", "127.0.0.1:4002")
	hs.onWrite(128, time.Millisecond)
	hs.onRead(64, time.Millisecond)
	hs.onDisconnect(ErrClosed)

	if len(full.connects) != 1 || full.connects[0] != "127.0.0.1:7497" {
		t.Errorf("connects = %v", full.connects)
	}
	if len(full.redirects) != 1 || full.redirects[0] != [2]string{"127.0.0.1:7497", "127.0.0.1:4002"} {
		t.Errorf("redirects = %v", full.redirects)
	}
	if full.writes != 1 || full.reads != 1 {
		t.Errorf("writes=%d reads=%d, want 1 and 1", full.writes, full.reads)
	}
	if len(full.disconnects) != 1 || full.disconnects[0] != ErrClosed {
		t.Errorf("disconnects = %v", full.disconnects)
	}
	if !partial.called {
		t.Error("connectOnlyHook.OnConnect was not called")
	}
}

func TestEmptyHooksAreNoOps(t *testing.T) {
	var hs hooks
	hs.onConnect("x")
	hs.onRedirect("x", "y")
	hs.onWrite(1, time.Millisecond)
	hs.onRead(1, time.Millisecond)
	hs.onDisconnect(nil)
}
