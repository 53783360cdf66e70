// Package testdata derives deterministic test data from a SHAKE-128 stream so tests and fuzz seeds are reproducible
// without hardcoded vectors.
package testdata

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// A DRBG is a deterministic byte stream keyed by a domain string.
type DRBG struct {
	shake sha3.ShakeHash
}

// New returns a DRBG whose output is determined entirely by domain.
func New(domain string) *DRBG {
	shake := sha3.NewShake128()
	_, _ = shake.Write([]byte(domain))
	return &DRBG{shake: shake}
}

// Data returns the next n bytes of the stream.
func (d *DRBG) Data(n int) []byte {
	buf := make([]byte, n)
	_, _ = d.shake.Read(buf)
	return buf
}

// Uint64 returns the next 8 bytes of the stream as a little-endian word.
func (d *DRBG) Uint64() uint64 {
	return binary.LittleEndian.Uint64(d.Data(8))
}
