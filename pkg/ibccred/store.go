// Package ibccred implements a small encrypted-at-rest cache for the
// extra-auth secret ibtws-cli needs to compute VerifyAndAuth responses, so
// a user doesn't retype it on every run. The secret is encrypted with
// AES-256-GCM using a key derived from a passphrase via PBKDF2 — this
// package's reason for existing is to give golang.org/x/crypto a real job
// now that pkg/twsauth's actual wire computation turned out to need
// stdlib crypto/des instead.
package ibccred

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/pbkdf2"
)

const (
	pbkdf2Iterations = 100_000
	saltLen          = 16
	keyLen           = 32 // AES-256
)

// record is the on-disk shape: base64 salt/nonce/ciphertext, JSON-encoded.
type record struct {
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	Ciphertext string `json:"ciphertext"`
}

// Save encrypts secret under passphrase and writes it to path with 0600
// permissions, overwriting any existing file.
func Save(path, passphrase, secret string) error {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return fmt.Errorf("ibccred: generate salt: %w", err)
	}
	gcm, err := newGCM(passphrase, salt)
	if err != nil {
		return err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return fmt.Errorf("ibccred: generate nonce: %w", err)
	}
	ciphertext := gcm.Seal(nil, nonce, []byte(secret), nil)

	rec := record{
		Salt:       base64.StdEncoding.EncodeToString(salt),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("ibccred: marshal record: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}

// Load decrypts the secret stored at path under passphrase.
func Load(path, passphrase string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("ibccred: read %s: %w", path, err)
	}
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return "", fmt.Errorf("ibccred: unmarshal record: %w", err)
	}

	salt, err := base64.StdEncoding.DecodeString(rec.Salt)
	if err != nil {
		return "", fmt.Errorf("ibccred: decode salt: %w", err)
	}
	nonce, err := base64.StdEncoding.DecodeString(rec.Nonce)
	if err != nil {
		return "", fmt.Errorf("ibccred: decode nonce: %w", err)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(rec.Ciphertext)
	if err != nil {
		return "", fmt.Errorf("ibccred: decode ciphertext: %w", err)
	}

	gcm, err := newGCM(passphrase, salt)
	if err != nil {
		return "", err
	}
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("ibccred: decrypt (wrong passphrase?): %w", err)
	}
	return string(plaintext), nil
}

func newGCM(passphrase string, salt []byte) (cipher.AEAD, error) {
	key := pbkdf2.Key([]byte(passphrase), salt, pbkdf2Iterations, keyLen, sha256.New)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("ibccred: new cipher: %w", err)
	}
	return cipher.NewGCM(block)
}
