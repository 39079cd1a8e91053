// Package fingerprint derives asset hashes from content.
package fingerprint

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/sha3"
)

// Version prefixes every fingerprint so the digest can change later without
// colliding with existing hashes.
const Version = "01"

// Compute returns the versioned SHA3-512 fingerprint of content.
func Compute(content []byte) string {
	digest := sha3.Sum512(content)
	return Version + hex.EncodeToString(digest[:])
}

// FromReader fingerprints everything read from r.
func FromReader(r io.Reader) (string, error) {
	h := sha3.New512()
	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("read content: %w", err)
	}
	return Version + hex.EncodeToString(h.Sum(nil)), nil
}

// FromFile fingerprints the file at path.
func FromFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return FromReader(f)
}
