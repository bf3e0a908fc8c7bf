package validators

import (
	"errors"
	"strings"
	"unicode"

	"github.com/pmezard/go-difflib/difflib"
)

// Password policy
const (
	PasswordMinLength     = 8
	PasswordMaxLength     = 72 // bcrypt ignores bytes past 72
	PasswordMaxSimilarity = 0.7
)

var (
	ErrPasswordTooShort   = errors.New("password must contain at least 8 characters")
	ErrPasswordTooLong    = errors.New("password must contain at most 72 bytes")
	ErrPasswordWhitespace = errors.New("password must not contain whitespace")
	ErrPasswordNumeric    = errors.New("password cannot be entirely numeric")
	ErrPasswordComplexity = errors.New("password must contain at least one letter and one digit")
	ErrPasswordSimilar    = errors.New("password cannot be similar to user attributes")
)

// CheckPassword applies the password policy. attrs are user attributes (email, names)
// the password must not resemble.
func CheckPassword(password string, attrs ...string) error {
	if len(password) < PasswordMinLength {
		return ErrPasswordTooShort
	}
	if len(password) > PasswordMaxLength {
		return ErrPasswordTooLong
	}

	var digits, letters int
	for _, r := range password {
		switch {
		case unicode.IsSpace(r):
			return ErrPasswordWhitespace
		case unicode.IsDigit(r):
			digits++
		case unicode.IsLetter(r):
			letters++
		}
	}
	if digits == len([]rune(password)) {
		return ErrPasswordNumeric
	}
	if digits == 0 || letters == 0 {
		return ErrPasswordComplexity
	}

	lowered := strings.ToLower(password)
	for _, attr := range expandAttributes(attrs) {
		if similarity(lowered, attr) >= PasswordMaxSimilarity {
			return ErrPasswordSimilar
		}
	}
	return nil
}

// expandAttributes adds the local part of email addresses.
func expandAttributes(attrs []string) []string {
	expanded := make([]string, 0, len(attrs)*2)
	for _, attr := range attrs {
		attr = strings.ToLower(strings.TrimSpace(attr))
		if attr == "" {
			continue
		}
		expanded = append(expanded, attr)
		if at := strings.IndexByte(attr, '@'); at > 0 {
			expanded = append(expanded, attr[:at])
		}
	}
	return expanded
}

func similarity(a, b string) float64 {
	return difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, "")).QuickRatio()
}
