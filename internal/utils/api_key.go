package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashAPIKey hashes a plaintext collector API key using bcrypt.
// The hashkey command uses it to produce the value for COLLECTOR_API_KEY_HASH.
func HashAPIKey(key string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckAPIKeyHash compares a plaintext API key with a bcrypt hash.
func CheckAPIKeyHash(key, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)) == nil
}
