// Package service declares the ports the use cases need from infrastructure:
// tokens, password hashing, caching, idempotency and event publishing.
package service

// PasswordHasher turns account passwords into stored hashes and verifies
// login attempts against them.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password produces hash.
	Check(password, hash string) bool
}
