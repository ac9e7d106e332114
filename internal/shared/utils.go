// Package shared provides small helpers used across client layers.
package shared

// WipeByteArray overwrites the contents of b with zeros. Used to remove
// passwords from memory once they have been sent.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
