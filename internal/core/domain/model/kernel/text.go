package kernel

import (
	"strings"
	"unicode/utf8"

	"orderdesk/internal/pkg/errs"
)

const (
	NameMinLength    = 2
	AddressMinLength = 5
)

// RequireText trims value and checks it holds at least minLength characters.
// paramName is reported in the error.
func RequireText(paramName, value string, minLength int) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", errs.NewValueIsRequiredError(paramName)
	}

	if n := utf8.RuneCountInString(value); n < minLength {
		return "", errs.NewValueIsOutOfRangeError(paramName+" length", n, minLength, "unbounded")
	}

	return value, nil
}

// Initials returns the upper-cased first letters of the words in name, at most two.
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteString(strings.ToUpper(string(r)))
		if utf8.RuneCountInString(b.String()) == 2 {
			break
		}
	}
	return b.String()
}
