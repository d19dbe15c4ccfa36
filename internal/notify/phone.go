package notify

import (
	"errors"
	"strings"
)

// errEmptyPhone is returned when a phone number contains no digits at all.
var errEmptyPhone = errors.New("phone number has no digits")

// NormalizePhone converts a free-form phone number to E.164-ish international
// format. All non-digit characters are stripped; a 10-digit number is assumed
// US-domestic and gets a +1 prefix, an 11-digit number already starting with
// the country digit 1 just gets the +, and any other digit sequence is
// prefixed with + as-is.
func NormalizePhone(raw string) (string, error) {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	switch {
	case d == "":
		return "", errEmptyPhone
	case len(d) == 10:
		return "+1" + d, nil
	default:
		return "+" + d, nil
	}
}
