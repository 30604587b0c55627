package ibc

import (
	"bufio"
	"encoding/binary"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/fourbytes/ibtws-go/pkg/twserr"
	"github.com/fourbytes/ibtws-go/pkg/twsframe"
	"github.com/fourbytes/ibtws-go/pkg/twsmsg"
)

func TestLooksLikeRedirect(t *testing.T) {
	cases := map[string]bool{
		"20240101 12:00:00":  false,
		"127.0.0.1:4002":     true,
		"gateway.local:7497": true,
		"":                   false,
		"no-colon-at-all":    false,
		"trailing-colon:":    false,
		"1970010112:00":      false,
	}
	for s, want := range cases {
		if got := looksLikeRedirect(s); got != want {
			t.Errorf("looksLikeRedirect(%q) = %v, want %v", s, got, want)
		}
	}
}

// fakeServer accepts exactly one connection, reads and discards the "API\0"
// prelude and the framed handshake request, then writes the framed ack
// payload it's handed. It closes the connection after writing.
func fakeServer(t *testing.T, ack func() []byte) (addr string, done <-chan struct{}) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen: %v", err)
	}
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		defer ln.Close()
		nc, err := ln.Accept()
		if err != nil {
			return
		}
		defer nc.Close()

		br := bufio.NewReader(nc)
		prelude := make([]byte, 4)
		if _, err := readFull(br, prelude); err != nil {
			return
		}
		// handshake request frame: 4-byte length + payload, discard it.
		var lenBuf [4]byte
		if _, err := readFull(br, lenBuf[:]); err != nil {
			return
		}
		n := binary.BigEndian.Uint32(lenBuf[:])
		reqPayload := make([]byte, n)
		if _, err := readFull(br, reqPayload); err != nil {
			return
		}

		framed, err := twsframe.Encode(ack())
		if err != nil {
			return
		}
		nc.Write(framed)
	}()
	return ln.Addr().String(), finished
}

func readFull(r *bufio.Reader, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := r.Read(buf[total:])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func handshakeAckPayload(serverVersion int32, addrOrTime string) []byte {
	b := []byte{}
	b = appendInt(b, serverVersion)
	b = appendString(b, addrOrTime)
	return b
}

func appendInt(b []byte, n int32) []byte {
	return append(b, []byte(itoaForTest(n))...)
}

func appendString(b []byte, s string) []byte {
	b = append(b, []byte(s)...)
	return append(b, 0)
}

func itoaForTest(n int32) string {
	if n == 0 {
		return "0\x00"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [12]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:]) + "\x00"
}

func TestHandshakeOnceSuccess(t *testing.T) {
	addr, done := fakeServer(t, func() []byte {
		return handshakeAckPayload(151, "20260730 12:00:00")
	})

	cfg := NewConfig(addr, WithDialTimeout(time.Second))
	t_, err := dialTransport("tcp", addr)
	if err != nil {
		t.Fatalf("dialTransport: %v", err)
	}
	defer t_.close()

	ctx := twsmsg.NewContext()
	ack, redirect, err := handshakeOnce(t_, cfg, ctx)
	if err != nil {
		t.Fatalf("handshakeOnce: %v", err)
	}
	if redirect != "" {
		t.Fatalf("unexpected redirect: %q", redirect)
	}
	if ack.ServerVersion != 151 {
		t.Fatalf("ack.ServerVersion = %d, want 151", ack.ServerVersion)
	}
	<-done
}

func TestHandshakeOnceRedirect(t *testing.T) {
	addr, done := fakeServer(t, func() []byte {
		return handshakeAckPayload(0, "127.0.0.1:9999")
	})

	cfg := NewConfig(addr, WithDialTimeout(time.Second))
	t_, err := dialTransport("tcp", addr)
	if err != nil {
		t.Fatalf("dialTransport: %v", err)
	}
	defer t_.close()

	ctx := twsmsg.NewContext()
	_, redirect, err := handshakeOnce(t_, cfg, ctx)
	if err != nil {
		t.Fatalf("handshakeOnce: %v", err)
	}
	if redirect != "127.0.0.1:9999" {
		t.Fatalf("redirect = %q, want 127.0.0.1:9999", redirect)
	}
	<-done
}

func TestHandshakeOnceZeroVersionWithUnparsableAddrIsInvalid(t *testing.T) {
	addr, done := fakeServer(t, func() []byte {
		return handshakeAckPayload(0, "not-an-address")
	})

	cfg := NewConfig(addr, WithDialTimeout(time.Second))
	t_, err := dialTransport("tcp", addr)
	if err != nil {
		t.Fatalf("dialTransport: %v", err)
	}
	defer t_.close()

	ctx := twsmsg.NewContext()
	_, _, err = handshakeOnce(t_, cfg, ctx)
	if !errors.Is(err, twserr.ErrInvalidRedirectAddress) {
		t.Fatalf("handshakeOnce error = %v, want ErrInvalidRedirectAddress", err)
	}
	<-done
}

func TestConnectExhaustsRedirectLimit(t *testing.T) {
	// Every attempt redirects to itself, forcing connect to hit its
	// redirectLimit and return ErrTooManyRedirect.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen: %v", err)
	}
	defer ln.Close()
	addr := ln.Addr().String()

	go func() {
		for {
			nc, err := ln.Accept()
			if err != nil {
				return
			}
			go func() {
				defer nc.Close()
				br := bufio.NewReader(nc)
				prelude := make([]byte, 4)
				if _, err := readFull(br, prelude); err != nil {
					return
				}
				var lenBuf [4]byte
				if _, err := readFull(br, lenBuf[:]); err != nil {
					return
				}
				n := binary.BigEndian.Uint32(lenBuf[:])
				reqPayload := make([]byte, n)
				if _, err := readFull(br, reqPayload); err != nil {
					return
				}
				framed, _ := twsframe.Encode(handshakeAckPayload(0, addr))
				nc.Write(framed)
			}()
		}
	}()

	cfg := NewConfig(addr, WithRedirectLimit(1), WithDialTimeout(time.Second))
	_, err = connect(cfg)
	if err == nil {
		t.Fatal("expected ErrTooManyRedirect, got nil")
	}
	if !errors.Is(err, twserr.ErrTooManyRedirect) {
		t.Fatalf("expected ErrTooManyRedirect, got %v", err)
	}
}
