package twsmsg

import (
	"fmt"

	"github.com/fourbytes/ibtws-go/pkg/twsbin"
)

// encodeHandshake renders the "API\0" prelude's payload: a bare
// "v{min}..{max}" range, optionally followed by a NUL and a connect
// option, with no length-prefixed framing of its own (the caller wraps it
// in the same 4-byte length frame as everything else).
func encodeHandshake(r *Handshake) []byte {
	s := fmt.Sprintf("v%d", r.MinVersion)
	if r.MaxVersion > r.MinVersion {
		s += fmt.Sprintf("..%d", r.MaxVersion)
	}
	if r.Option != "" {
		s += "\x00" + r.Option
	}
	return []byte(s)
}

// decodeHandshakeAck parses the server's pre-version-set reply: a
// negotiated version field followed by either a connection time or, when
// the server wants to redirect the client, a "host:port" address in the
// same slot.
func decodeHandshakeAck(frame []byte) (*HandshakeAck, error) {
	r := twsbin.NewReader(frame)
	version := r.ReadInt()
	addrOrTime := r.ReadString()
	if r.Err() != nil {
		return nil, r.Err()
	}
	return &HandshakeAck{ServerVersion: version, AddrOrTime: addrOrTime}, nil
}

// encodeStartAPI renders the StartApi request: opcode, wire version 2,
// client id, and the optional capabilities string (always written, empty
// when unset).
func encodeStartAPI(r *StartApi) []byte {
	w := twsbin.NewWriter(nil)
	w.PushInt(opStartAPI)
	w.PushInt(2)
	w.PushInt(r.ClientID)
	_ = w.PushString(r.OptionalCapabilities)
	return w.Buf
}
