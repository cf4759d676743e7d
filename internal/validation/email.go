package validation

import (
	"errors"
	"net/mail"
)

// ValidateEmail checks the address an OAuth provider hands back on sign-in.
// The provider has already verified ownership; this only rejects malformed
// or oversized values before they reach the users table.
func ValidateEmail(email string) error {
	if email == "" {
		return errors.New("email address is required")
	}

	// RFC 5321 caps the full address at 254 octets
	if len(email) > 254 {
		return errors.New("email address is too long (max 254 characters)")
	}

	_, err := mail.ParseAddress(email)
	if err != nil {
		return errors.New("invalid email address format")
	}

	return nil
}
