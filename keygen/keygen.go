// Package keygen derives the integer embedding key from a secret, so that a
// passphrase or an organisation master key can stand in for it.
package keygen

import (
	"crypto/hkdf"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"time"
)

const (
	info   = "pairmark-embedding-key-v1"
	keyLen = 8
)

var ErrEmptySecret = errors.New("secret must not be empty")

// Derive returns a 64-bit key from secret with HKDF-SHA256. salt may be nil.
// Different labels give independent keys from one secret.
func Derive(secret, salt []byte, label string) (int64, error) {
	if len(secret) == 0 {
		return 0, ErrEmptySecret
	}
	k, err := hkdf.Key(sha256.New, secret, salt, info+"-"+label, keyLen)
	if err != nil {
		return 0, fmt.Errorf("failed to derive key: %w", err)
	}
	return int64(binary.BigEndian.Uint64(k)), nil
}

// Hourly derives the key for the UTC hour containing timestamp. Extraction
// must use a timestamp from the same hour as embedding.
func Hourly(secret, salt []byte, timestamp time.Time) (int64, error) {
	return Derive(secret, salt, timestamp.UTC().Format("2006010215"))
}
