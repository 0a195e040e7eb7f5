package domain

import "regexp"

// emailRegex matches a practical email format: a restricted local part,
// a domain, and a TLD of at least two letters. Spaces and other junk
// characters are rejected.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func validEmail(s string) bool {
	return emailRegex.MatchString(s)
}
