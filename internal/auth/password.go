package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a salted bcrypt hash of the plaintext. Repeated
// calls with the same plaintext yield different hashes.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the stored hash.
// A malformed hash counts as a mismatch, never a panic.
func VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
