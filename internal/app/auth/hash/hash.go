package hash

import (
	"golang.org/x/crypto/bcrypt"

	customErrors "github.com/loginhub/auth-service/internal/domain/auth/errors"
)

// Work factor matches the original deployment; bumping it invalidates no
// stored hashes since the cost is embedded in each digest.
const cost = 10

// Password returns a salted bcrypt digest of the plaintext. Two calls with
// the same input produce different digests.
func Password(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", customErrors.WrapInternal(err, "hash password")
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the stored digest. A mismatch is
// not an error, only false.
func Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
