package utility

import (
	"fmt"
	"regexp"
	"time"

	"leoni_app/api/internal/common"
)

// GoProtect runs f and recovers from any panic inside it, so a
// background job can never take the server down.
func GoProtect(f func()) {
	defer func() {
		if err := recover(); err != nil {
			fmt.Printf("recovered from panic: %v\n", err)
		}
	}()

	f()
}

// UnixMilli returns the time in milliseconds.
func UnixMilli(t time.Time) int64 {
	return t.Round(time.Millisecond).UnixNano() / (int64(time.Millisecond) / int64(time.Nanosecond))
}

// CurrentTimeInMilli returns the current timestamp in milliseconds.
func CurrentTimeInMilli() int64 {
	return UnixMilli(time.Now())
}

// ValidateEmail checks the email format.
func ValidateEmail(email string) error {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return common.ErrInvalidEmail
	}
	return nil
}

// ValidatePassword checks the minimal password strength.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return common.ErrWeakPassword
	}
	return nil
}
