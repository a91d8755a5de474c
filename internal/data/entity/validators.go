package entity

import (
	"fmt"
	"time"
)

const MinUsernameLength = 3

// ValidateUsername rejects usernames shorter than three characters.
func ValidateUsername(value string) error {
	if len([]rune(value)) < MinUsernameLength {
		return fmt.Errorf("username must be at least %d characters", MinUsernameLength)
	}
	return nil
}

// ValidateYear rejects release years later than the current calendar
// year. The current year itself is accepted.
func ValidateYear(value int) error {
	current := time.Now().Year()
	if value > current {
		return fmt.Errorf("year %d is greater than the current year %d", value, current)
	}
	return nil
}
