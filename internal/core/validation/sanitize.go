package validation

import "strings"

var angleBrackets = strings.NewReplacer("<", "", ">", "")

// Sanitize trims surrounding whitespace and strips angle brackets as a
// defence against tag injection. Passwords must never pass through
// here: stripping characters would corrupt legitimate symbols the
// password policy requires.
func Sanitize(input string) string {
	return angleBrackets.Replace(strings.TrimSpace(input))
}
