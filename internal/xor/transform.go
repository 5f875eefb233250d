package xor

import "fmt"

// Transform returns data XORed with key, cycling the key over the data.
// data is not modified. Applying Transform twice with the same key yields the original data.
func Transform(data, key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: key must not be empty", ErrInvalidKey)
	}

	out := make([]byte, len(data))

	for i, b := range data {
		out[i] = b ^ key[i%len(key)]
	}

	return out, nil
}
