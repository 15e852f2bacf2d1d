package validation

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Password complexity patterns. Each unmet condition reports its own error,
// in this declaration order, followed by the length check.
var (
	uppercasePattern = regexp.MustCompile(`[A-Z]`)
	lowercasePattern = regexp.MustCompile(`[a-z]`)
	digitPattern     = regexp.MustCompile(`\d`)
	symbolPattern    = regexp.MustCompile("[`~<>?,./!@#$%^&*()\\-_+=\"'|{}\\[\\];:\\\\]")
)

// Pattern builds a constraint that the value matches the given expression.
func Pattern(re *regexp.Regexp, message string) Constraint {
	return Constraint{
		Check: func(v string) bool { return re.MatchString(v) },
		Err: Error{
			Code:       "invalid_string",
			Validation: "regex",
			Message:    message,
		},
	}
}

// MinLength builds a constraint that the value is at least n characters
// long. Counts characters, not bytes, so multibyte input is measured the
// way clients see it.
func MinLength(n int, message string) Constraint {
	return Constraint{
		Check: func(v string) bool { return utf8.RuneCountInString(v) >= n },
		Err: Error{
			Code:    "too_small",
			Minimum: n,
			Type:    "string",
			Message: message,
		},
	}
}

// Email builds a syntactic email-format constraint. No deliverability check.
func Email() Constraint {
	return Constraint{
		Check: isEmail,
		Err: Error{
			Code:       "invalid_string",
			Validation: "email",
			Message:    "Invalid email",
		},
	}
}

// Password returns the complexity policy for authentication passwords:
// one uppercase, one lowercase, one digit, one symbol, minimum 8 characters.
func Password() []Constraint {
	return []Constraint{
		Pattern(uppercasePattern, "Password must contain at least one uppercase character"),
		Pattern(lowercasePattern, "Password must contain at least one lowercase character"),
		Pattern(digitPattern, "Password must contain at least one number"),
		Pattern(symbolPattern, "Password must contain at least one special character"),
		MinLength(8, "Password must be at least 8 characters in length"),
	}
}

// isEmail accepts a bare RFC 5322 address with a dotted domain.
func isEmail(v string) bool {
	addr, err := mail.ParseAddress(v)
	if err != nil || addr.Address != v {
		return false
	}

	at := strings.LastIndex(v, "@")
	if at <= 0 {
		return false
	}
	domain := v[at+1:]
	return strings.Contains(domain, ".") && !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}
