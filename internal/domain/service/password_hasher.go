// Package service defines interfaces for domain services implemented in the infra layer.
package service

// PasswordHasher hashes account passwords at registration.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash.
	Check(password, hash string) bool
}
