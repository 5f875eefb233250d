// Package xor implements a repeating-key XOR byte transform and applies it to files.
// The transform is its own inverse: running it twice with the same key restores the input.
// It obfuscates content and provides no confidentiality.
package xor
