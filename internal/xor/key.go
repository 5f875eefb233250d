package xor

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Encoding selects how a key string is converted to bytes.
type Encoding string

const (
	// EncodingRaw uses the bytes of the string as given.
	EncodingRaw Encoding = "raw"
	// EncodingHex decodes the string as hexadecimal.
	EncodingHex Encoding = "hex"
)

// Key is a non-empty, immutable sequence of key bytes.
type Key struct {
	b []byte
}

// NewKey copies b into a Key. It fails with ErrInvalidKey if b is empty.
func NewKey(b []byte) (Key, error) {
	if len(b) == 0 {
		return Key{}, fmt.Errorf("%w: key must not be empty", ErrInvalidKey)
	}

	return Key{b: append([]byte(nil), b...)}, nil
}

// ParseKey converts s to a Key using the given encoding.
// An empty encoding is treated as EncodingRaw.
func ParseKey(s string, enc Encoding) (Key, error) {
	switch enc {
	case EncodingRaw, "":
		return NewKey([]byte(s))
	case EncodingHex:
		b, err := hex.DecodeString(strings.TrimSpace(s))
		if err != nil {
			return Key{}, fmt.Errorf("%w: decoding hex: %w", ErrInvalidKey, err)
		}

		return NewKey(b)
	default:
		return Key{}, fmt.Errorf("%w: unknown encoding %q", ErrInvalidKey, enc)
	}
}

// Bytes returns a copy of the key material.
func (k Key) Bytes() []byte {
	return append([]byte(nil), k.b...)
}

// Len returns the number of key bytes.
func (k Key) Len() int {
	return len(k.b)
}

// IsZero reports whether k was not constructed through NewKey or ParseKey.
func (k Key) IsZero() bool {
	return len(k.b) == 0
}

// String hides the key material.
func (k Key) String() string {
	return fmt.Sprintf("xor.Key(%d bytes)", len(k.b))
}
