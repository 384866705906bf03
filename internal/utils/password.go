package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword returns the bcrypt hash of a raw password using the given cost.
// The hash embeds its own salt, so equal passwords hash differently.
func HashPassword(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword safely compares a bcrypt hash and a plain password.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
