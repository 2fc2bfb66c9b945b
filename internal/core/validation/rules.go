// Package validation holds the declarative field rules the gateway
// enforces on signup and login input. Each rule pairs a fixed pattern
// with the message clients receive when it fails; the rule set is
// immutable and safe for concurrent use.
package validation

import (
	"regexp"
	"strings"
)

// Canonical field names used across handlers and services.
const (
	FieldFullName       = "fullName"
	FieldIDNumber       = "idNumber"
	FieldUsername       = "username"
	FieldAccountNumber  = "accountNumber"
	FieldPassword       = "password"
	FieldEmployeeNumber = "employeeNumber"
)

// passwordSymbols is the fixed punctuation set a password may (and must)
// draw its special character from.
const passwordSymbols = "@$!%*?&"

// Rule is a single named field constraint: a pattern, an optional extra
// predicate for constraints a Go regexp cannot express, and the exact
// client-facing failure message.
type Rule struct {
	pattern *regexp.Regexp
	extra   func(string) bool
	Message string
}

// Matches reports whether value satisfies the rule. Empty input never
// matches.
func (r Rule) Matches(value string) bool {
	if value == "" || !r.pattern.MatchString(value) {
		return false
	}
	if r.extra != nil && !r.extra(value) {
		return false
	}
	return true
}

var rules = map[string]Rule{
	FieldFullName: {
		pattern: regexp.MustCompile(`^[a-zA-Z\s]{2,50}$`),
		Message: "Full name must be 2-50 characters, letters and spaces only",
	},
	FieldIDNumber: {
		pattern: regexp.MustCompile(`^\d{13}$`),
		Message: "ID number must be exactly 13 digits",
	},
	FieldUsername: {
		pattern: regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`),
		Message: "Username must be 3-20 characters, alphanumeric and underscore only",
	},
	FieldAccountNumber: {
		pattern: regexp.MustCompile(`^\d{10,12}$`),
		Message: "Account number must be 10-12 digits",
	},
	// Go's regexp has no lookahead, so the character-class requirements
	// are composed checks. The accepted language is identical to
	// ^(?=.*[a-z])(?=.*[A-Z])(?=.*\d)(?=.*[@$!%*?&])[A-Za-z\d@$!%*?&]{8,20}$
	FieldPassword: {
		pattern: regexp.MustCompile(`^[A-Za-z0-9@$!%*?&]{8,20}$`),
		extra:   passwordClasses,
		Message: "Password must be 8-20 characters with at least one uppercase, lowercase, digit, and special character",
	},
	FieldEmployeeNumber: {
		pattern: regexp.MustCompile(`^EMP\d{6}$`),
		Message: "Employee number must be EMP followed by 6 digits",
	},
}

func passwordClasses(v string) bool {
	var lower, upper, digit, symbol bool
	for _, c := range v {
		switch {
		case c >= 'a' && c <= 'z':
			lower = true
		case c >= 'A' && c <= 'Z':
			upper = true
		case c >= '0' && c <= '9':
			digit = true
		case strings.ContainsRune(passwordSymbols, c):
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}

// Check validates value against the named field's rule. A missing rule
// name is a programming error and panics early rather than silently
// passing input through.
func Check(field, value string) (ok bool, message string) {
	r, exists := rules[field]
	if !exists {
		panic("validation: unknown field " + field)
	}
	if r.Matches(value) {
		return true, ""
	}
	return false, r.Message
}

// Message returns the failure message for a field without evaluating it.
func Message(field string) string {
	r, exists := rules[field]
	if !exists {
		panic("validation: unknown field " + field)
	}
	return r.Message
}
