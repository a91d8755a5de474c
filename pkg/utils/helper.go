package utils

import (
	"crypto/rand"
	"strconv"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// GenerateConfirmationCode creates a random numeric code of the given
// length. The code is a credential, so it comes from crypto/rand.
func GenerateConfirmationCode(length int) (string, error) {
	if length <= 0 {
		length = 5
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	code := make([]byte, length)
	for i, b := range buf {
		code[i] = '0' + b%10
	}

	return string(code), nil
}
