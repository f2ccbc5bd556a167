package validators

import "strings"

// IsPhoneValid does a light sanity check on an intake phone number:
// optional leading +, then 7 to 15 digits (spaces and dashes allowed).
func IsPhoneValid(phone string) bool {
	phone = strings.TrimSpace(phone)
	phone = strings.TrimPrefix(phone, "+")

	digits := 0
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '-':
			// separators are fine
		default:
			return false
		}
	}
	return digits >= 7 && digits <= 15
}
