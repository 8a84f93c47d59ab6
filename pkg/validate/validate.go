// Package validate carries the form checks shared by the public site
// endpoints: permissive email shape, French phone numbers.
package validate

import "regexp"

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// French numbers: 0X, +33X or 0033X followed by 8 digits, X in 1-9.
	phoneRe  = regexp.MustCompile(`^(?:(?:\+|00)33|0)[1-9][0-9]{8}$`)
	sepStrip = regexp.MustCompile(`[\s.\-]`)
)

func Email(s string) bool { return emailRe.MatchString(s) }

// TelephoneFR accepts common formatting (spaces, dots, dashes) around a
// valid French number.
func TelephoneFR(s string) bool {
	return phoneRe.MatchString(sepStrip.ReplaceAllString(s, ""))
}
