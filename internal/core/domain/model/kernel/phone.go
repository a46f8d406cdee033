package kernel

import (
	"strings"
	"unicode"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

const (
	// PhoneMinDigits and PhoneMaxDigits bound the digits a phone number may hold
	// once separators are stripped.
	PhoneMinDigits = 9
	PhoneMaxDigits = 12
)

var ErrPhoneIsNotConstructed = errs.NewValueIsRequiredError("phone must be created via NewPhone")

// Phone is a contact number. The original formatting is kept for display,
// validation only looks at the digits.
//
// Example:
//
//	phone, err := kernel.NewPhone("+34 612 345 678")
//	phone.Digits() // "34612345678"
type Phone struct {
	value  string
	digits string
	guard  guard.ConstructorGuard
}

func NewPhone(value string) (Phone, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Phone{}, errs.NewValueIsRequiredError("phone")
	}

	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, value)

	if n := len(digits); n < PhoneMinDigits || n > PhoneMaxDigits {
		return Phone{}, errs.NewValueIsOutOfRangeError("phone digits", n, PhoneMinDigits, PhoneMaxDigits)
	}

	return Phone{value: value, digits: digits, guard: guard.NewConstructorGuard()}, nil
}

func (p Phone) Validate() error {
	return p.guard.Validate(ErrPhoneIsNotConstructed)
}

func (p Phone) String() string {
	return p.value
}

func (p Phone) Digits() string {
	return p.digits
}
