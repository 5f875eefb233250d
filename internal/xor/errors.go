package xor

import "errors"

var (
	// ErrInvalidKey is returned when the key is empty or cannot be decoded.
	ErrInvalidKey = errors.New("invalid key")
	// ErrFileNotFound is returned when the source file cannot be opened for reading.
	ErrFileNotFound = errors.New("file not found")
	// ErrIO is returned for any other read or write failure.
	ErrIO = errors.New("io error")
)

// Kind returns a short description of the error class err belongs to,
// or an empty string if err does not originate from this package.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidKey):
		return ErrInvalidKey.Error()
	case errors.Is(err, ErrFileNotFound):
		return ErrFileNotFound.Error()
	case errors.Is(err, ErrIO):
		return ErrIO.Error()
	default:
		return ""
	}
}
