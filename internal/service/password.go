package service

import "strings"

// passwordSymbols is the set of characters that count as "special" for the
// password policy.
const passwordSymbols = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

// MinPasswordLength is the policy's length floor.
const MinPasswordLength = 8

// PasswordViolation is one failed policy rule, with the message shown to the
// user.
type PasswordViolation struct {
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Password policy rule identifiers.
const (
	RuleMinLength = "min_length"
	RuleLowercase = "lowercase"
	RuleUppercase = "uppercase"
	RuleDigit     = "digit"
	RuleSymbol    = "symbol"
)

// ValidatePassword checks the candidate password against every policy rule
// and returns all violations, not just the first. An empty slice means the
// password is acceptable.
func ValidatePassword(password string) []PasswordViolation {
	var violations []PasswordViolation

	if len(password) < MinPasswordLength {
		violations = append(violations, PasswordViolation{
			Rule:    RuleMinLength,
			Message: "Password must be at least 8 characters long",
		})
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
		violations = append(violations, PasswordViolation{
			Rule:    RuleLowercase,
			Message: "Password must contain at least one lowercase letter",
		})
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		violations = append(violations, PasswordViolation{
			Rule:    RuleUppercase,
			Message: "Password must contain at least one uppercase letter",
		})
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= '0' && r <= '9' }) {
		violations = append(violations, PasswordViolation{
			Rule:    RuleDigit,
			Message: "Password must contain at least one number",
		})
	}
	if !strings.ContainsAny(password, passwordSymbols) {
		violations = append(violations, PasswordViolation{
			Rule:    RuleSymbol,
			Message: "Password must contain at least one special character",
		})
	}

	return violations
}
