package xor_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/idelchi/goxor/internal/xor"
)

func TestParseKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		enc     xor.Encoding
		want    []byte
		wantErr bool
	}{
		{name: "raw ascii", input: "key", enc: xor.EncodingRaw, want: []byte("key")},
		{name: "default encoding is raw", input: "key", enc: "", want: []byte("key")},
		{name: "raw utf8", input: "é", enc: xor.EncodingRaw, want: []byte{0xc3, 0xa9}},
		{name: "raw keeps whitespace", input: " k ", enc: xor.EncodingRaw, want: []byte(" k ")},
		{name: "hex", input: "00ff10", enc: xor.EncodingHex, want: []byte{0x00, 0xff, 0x10}},
		{name: "hex trims surrounding space", input: "  abcd\n", enc: xor.EncodingHex, want: []byte{0xab, 0xcd}},
		{name: "empty raw", input: "", enc: xor.EncodingRaw, wantErr: true},
		{name: "empty hex", input: "", enc: xor.EncodingHex, wantErr: true},
		{name: "odd hex", input: "abc", enc: xor.EncodingHex, wantErr: true},
		{name: "non hex", input: "zz", enc: xor.EncodingHex, wantErr: true},
		{name: "unknown encoding", input: "key", enc: "base64", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			key, err := xor.ParseKey(tt.input, tt.enc)
			if tt.wantErr {
				if !errors.Is(err, xor.ErrInvalidKey) {
					t.Fatalf("ParseKey(%q) error = %v, want ErrInvalidKey", tt.input, err)
				}

				return
			}

			if err != nil {
				t.Fatalf("ParseKey(%q) error: %v", tt.input, err)
			}

			if !bytes.Equal(key.Bytes(), tt.want) {
				t.Errorf("ParseKey(%q) = %x, want %x", tt.input, key.Bytes(), tt.want)
			}

			if key.Len() != len(tt.want) {
				t.Errorf("Len() = %d, want %d", key.Len(), len(tt.want))
			}
		})
	}
}

func TestKeyIsImmutable(t *testing.T) {
	t.Parallel()

	src := []byte("abc")

	key, err := xor.NewKey(src)
	if err != nil {
		t.Fatal(err)
	}

	src[0] = 'z'

	got := key.Bytes()
	got[1] = 'z'

	if !bytes.Equal(key.Bytes(), []byte("abc")) {
		t.Errorf("key changed to %q", key.Bytes())
	}
}

func TestKeyStringHidesMaterial(t *testing.T) {
	t.Parallel()

	key, err := xor.NewKey([]byte("hunter2"))
	if err != nil {
		t.Fatal(err)
	}

	if strings.Contains(key.String(), "hunter2") {
		t.Errorf("String() leaks key: %s", key)
	}
}

func TestKind(t *testing.T) {
	t.Parallel()

	_, err := xor.NewKey(nil)
	if got := xor.Kind(err); got != "invalid key" {
		t.Errorf("Kind = %q, want %q", got, "invalid key")
	}

	if got := xor.Kind(errors.New("other")); got != "" {
		t.Errorf("Kind = %q, want empty", got)
	}
}
