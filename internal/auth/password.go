package auth

import "golang.org/x/crypto/bcrypt"

// HashCredential derives a salted one-way hash of a credential.
func HashCredential(credential string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(credential), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CompareCredential reports whether the credential matches the stored hash.
// bcrypt's comparison is constant-time over the derived key.
func CompareCredential(hash, credential string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(credential)) == nil
}
