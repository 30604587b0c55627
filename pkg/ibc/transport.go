package ibc

import (
	"bufio"
	"net"

	"github.com/fourbytes/ibtws-go/pkg/twsframe"
)

// transport owns the raw TCP connection and the framing codec layered on
// top of it. It has no knowledge of message shapes; conn.go and client.go
// are the only callers.
type transport struct {
	nc  net.Conn
	br  *bufio.Reader
	dec *twsframe.Decoder
}

func dialTransport(network, addr string) (*transport, error) {
	nc, err := net.Dial(network, addr)
	if err != nil {
		return nil, err
	}
	return &transport{nc: nc, br: bufio.NewReaderSize(nc, 32*1024), dec: twsframe.NewDecoder()}, nil
}

func (t *transport) writeFramed(payload []byte) error {
	framed, err := twsframe.Encode(payload)
	if err != nil {
		return err
	}
	_, err = t.nc.Write(framed)
	return err
}

// writeRaw writes payload with no length framing; only the handshake
// prelude's "API\0" literal needs this.
func (t *transport) writeRaw(payload []byte) error {
	_, err := t.nc.Write(payload)
	return err
}

// readFrame blocks until one full frame payload has arrived, reading and
// feeding chunks into the decoder as needed.
func (t *transport) readFrame() ([]byte, error) {
	for {
		payload, ok, err := t.dec.Next()
		if err != nil {
			return nil, err
		}
		if ok {
			return payload, nil
		}
		buf := make([]byte, 32*1024)
		n, err := t.br.Read(buf)
		if n > 0 {
			t.dec.Feed(buf[:n])
		}
		if err != nil {
			return nil, err
		}
	}
}

func (t *transport) close() error { return t.nc.Close() }
