package hash

// Hash hashes and verifies secrets.
type Hash interface {
	// Hash hashes the plaintext.
	Hash(plaintext string) ([]byte, error)
	// Verify reports whether plaintext matches the hashed value.
	Verify(hashed, plaintext string) bool
}
