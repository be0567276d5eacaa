// Package crypto provides the password hashing capability used by the
// account service.
//
// Hashing is kept behind the [Hasher] interface so the algorithm can be
// swapped without touching account logic.
package crypto

// Hasher derives one-way salted digests from plaintext passwords and
// verifies plaintext candidates against stored digests.
//
// Implementations must never make the plaintext recoverable from the digest
// and must embed their own salt so equal passwords produce distinct digests.
type Hasher interface {
	// Hash derives a storable digest from the plaintext password.
	Hash(plain string) (string, error)

	// Verify reports whether plain matches the previously stored digest.
	// It returns false for malformed digests instead of failing.
	Verify(plain, digest string) bool
}
