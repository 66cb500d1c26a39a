package utils

import "net/mail"

// IsValidEmail reports whether s parses as an address.
func IsValidEmail(s string) bool {
	if s == "" {
		return false
	}
	_, err := mail.ParseAddress(s)
	return err == nil
}
