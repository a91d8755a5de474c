package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashCode irreversibly hashes a confirmation code before storage.
// Only the hash ever touches the database.
func HashCode(code string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckCodeHash compares a submitted code against its stored hash.
func CheckCodeHash(code, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil
}
