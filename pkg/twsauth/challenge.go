// Package twsauth implements the client side of the optional Verify /
// VerifyAndAuth handshake extension: a challenge-response exchange proving
// possession of a shared secret before the API connection is allowed to
// trade, layered on top of (not replacing) the regular connect handshake.
//
// The wire messages themselves (VerifyRequest/VerifyMessage/...) live in
// twsmsg; this package only computes the DES-encrypted response a
// VerifyAndAuthMessage challenge expects, given the base64-encoded secret
// key issued out of band by the account's auth server.
package twsauth

import (
	"crypto/des"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// ComputeResponse answers a VerifyAndAuth "xyz" challenge: it decodes
// secretKeyBase64 to 8 key bytes, ECB-encrypts the hex-decoded challenge
// with them one DES block at a time, and returns the ciphertext as an
// upper-case hex string — the same transform the reference clients apply
// before sending it back as VerifyAndAuthMessage.XyzResponse.
func ComputeResponse(secretKeyBase64, challengeHex string) (string, error) {
	key, err := base64.StdEncoding.DecodeString(secretKeyBase64)
	if err != nil {
		return "", fmt.Errorf("twsauth: decode secret key: %w", err)
	}
	if len(key) < 8 {
		return "", fmt.Errorf("twsauth: secret key too short: got %d bytes, want >= 8", len(key))
	}

	challenge, err := hex.DecodeString(challengeHex)
	if err != nil {
		return "", fmt.Errorf("twsauth: decode challenge: %w", err)
	}

	block, err := des.NewCipher(key[:8])
	if err != nil {
		return "", fmt.Errorf("twsauth: new DES cipher: %w", err)
	}

	padded := make([]byte, roundUp8(len(challenge)))
	copy(padded, challenge)

	out := make([]byte, len(padded))
	for off := 0; off < len(padded); off += des.BlockSize {
		block.Encrypt(out[off:off+des.BlockSize], padded[off:off+des.BlockSize])
	}

	return fmt.Sprintf("%X", out), nil
}

func roundUp8(n int) int {
	if n%8 == 0 {
		return n
	}
	return n + (8 - n%8)
}
