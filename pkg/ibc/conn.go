package ibc

import (
	"bufio"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/fourbytes/ibtws-go/pkg/twsframe"
	"github.com/fourbytes/ibtws-go/pkg/twsmsg"
)

// connState names the stages of the connect handshake, in the order a
// successful connect passes through them. Redirects loop Greeted..
// HandshakeAckWait back on themselves against a new address.
type connState int

const (
	stateDisconnected connState = iota
	stateGreeted
	stateHandshakeSent
	stateHandshakeAckWait
	stateReady
	stateActive
)

func (s connState) String() string {
	switch s {
	case stateDisconnected:
		return "disconnected"
	case stateGreeted:
		return "greeted"
	case stateHandshakeSent:
		return "handshake-sent"
	case stateHandshakeAckWait:
		return "handshake-ack-wait"
	case stateReady:
		return "ready"
	case stateActive:
		return "active"
	default:
		return "unknown"
	}
}

const handshakePrelude = "API\x00"

// connectResult is everything client.go needs to start its read/write
// loops once the handshake has reached Active.
type connectResult struct {
	t   *transport
	ctx *twsmsg.Context
}

// connect drives the state machine described in conn.go's const block: it
// greets the server, sends the version-range handshake, follows up to
// cfg.redirectLimit redirect acks to a new address, and finally sends
// StartApi once a server version has been negotiated.
func connect(cfg *Config) (*connectResult, error) {
	addr := cfg.addr
	ctx := twsmsg.NewContext()
	ctx.SetExtraAuth(cfg.extraAuth)
	deadline := time.Now().Add(cfg.handshakeTimeout)

	attempts := 0
	for {
		attempts++
		if attempts > cfg.redirectLimit+1 {
			return nil, fmt.Errorf("ibc: %w: %d attempts", ErrTooManyRedirect, attempts-1)
		}

		cfg.logger.Debugf("ibc: dialing %s (attempt %d)", addr, attempts)
		nc, err := net.DialTimeout("tcp", addr, cfg.dialTimeout)
		if err != nil {
			return nil, fmt.Errorf("ibc: dial %s: %w", addr, err)
		}
		t := &transport{nc: nc, br: bufio.NewReaderSize(nc, 32*1024), dec: twsframe.NewDecoder()}
		nc.SetDeadline(deadline)
		cfg.hooks.onConnect(addr)

		ack, redirectAddr, err := handshakeOnce(t, cfg, ctx)
		if err != nil {
			t.close()
			return nil, err
		}
		if redirectAddr != "" {
			t.close()
			cfg.logger.Infof("ibc: redirected from %s to %s", addr, redirectAddr)
			cfg.hooks.onRedirect(addr, redirectAddr)
			addr = redirectAddr
			ctx = twsmsg.NewContext()
			ctx.SetExtraAuth(cfg.extraAuth)
			continue
		}

		cfg.logger.Infof("ibc: connected, server version %d, connect time %q", ack.ServerVersion, ack.AddrOrTime)

		startReq := &twsmsg.StartApi{ClientID: cfg.clientID}
		payload, _, err := twsmsg.EncodeMessage(ctx, startReq)
		if err != nil {
			t.close()
			return nil, err
		}
		if err := t.writeFramed(payload); err != nil {
			t.close()
			return nil, err
		}
		nc.SetDeadline(time.Time{})

		return &connectResult{t: t, ctx: ctx}, nil
	}
}

// handshakeOnce performs one greet+handshake+ack round trip. redirectAddr is
// non-empty when the server asked the client to reconnect elsewhere instead
// of returning a connection time.
func handshakeOnce(t *transport, cfg *Config, ctx *twsmsg.Context) (*twsmsg.HandshakeAck, string, error) {
	if err := t.writeRaw([]byte(handshakePrelude)); err != nil {
		return nil, "", err
	}

	req := &twsmsg.Handshake{MinVersion: cfg.minVersion, MaxVersion: cfg.maxVersion}
	payload, _, err := twsmsg.EncodeMessage(ctx, req)
	if err != nil {
		return nil, "", err
	}
	if err := t.writeFramed(payload); err != nil {
		return nil, "", err
	}

	frame, err := t.readFrame()
	if err != nil {
		return nil, "", err
	}
	resp, err := twsmsg.DecodeMessage(ctx, frame)
	if err != nil {
		return nil, "", err
	}
	ack, ok := resp.(*twsmsg.HandshakeAck)
	if !ok {
		return nil, "", ErrInvalidHandshakeAck
	}

	if ack.ServerVersion > 0 {
		return ack, "", nil
	}
	if !looksLikeRedirect(ack.AddrOrTime) {
		return nil, "", fmt.Errorf("ibc: %w: %q", ErrInvalidRedirectAddress, ack.AddrOrTime)
	}
	return ack, ack.AddrOrTime, nil
}

// looksLikeRedirect reports whether s parses as a "host:port" redirect
// target whose port is in 1..65535. Only consulted once ack.ServerVersion
// == 0 has already decided the ack is a redirect, not a Ready ack
// (server_version > 0 is always Ready regardless of what AddrOrTime
// contains).
func looksLikeRedirect(s string) bool {
	i := strings.LastIndexByte(s, ':')
	if i < 0 || i == len(s)-1 {
		return false
	}
	for _, r := range s[i+1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	port, err := strconv.Atoi(s[i+1:])
	return err == nil && port >= 1 && port <= 65535
}
