// Package validation holds the field rules a patient record must satisfy
// before it is written. Rules run in a fixed order and stop at the first
// failure.
package validation

import (
	"regexp"
	"strings"

	"github.com/muhammadheryan/patient-registry/constant"
)

// Error is a rule failure. Reason is shown to the user as is.
type Error struct {
	Reason string
}

func (e *Error) Error() string {
	return e.Reason
}

var (
	ErrNameTooShort    = &Error{Reason: "Name too short"}
	ErrNameCharacters  = &Error{Reason: "Name must contain letters and spaces only"}
	ErrPositionMissing = &Error{Reason: "Position required"}
	ErrPositionInvalid = &Error{Reason: "Invalid position"}
	ErrEmailInvalid    = &Error{Reason: "Invalid email"}
	ErrPhoneDigits     = &Error{Reason: "Phone must be 10 digits"}
	ErrLocationMissing = &Error{Reason: "Country/City required"}
	ErrLocationInvalid = &Error{Reason: "Country/City must contain letters and spaces only"}
	ErrGenderInvalid   = &Error{Reason: "Invalid gender"}
	ErrPasswordWeak    = &Error{Reason: "Weak password"}
	ErrPasswordLong    = &Error{Reason: "Password too long"}
	ErrPasswordMatch   = &Error{Reason: "Passwords do not match"}
)

const (
	minNameLength     = 6
	minPasswordLength = 5
	// bcrypt refuses longer input
	maxPasswordBytes  = 72
)

var (
	emailPattern   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	lettersPattern = regexp.MustCompile(`^[A-Za-z ]+$`)
)

// Fields is a candidate record as submitted by the user.
type Fields struct {
	FullName        string
	Position        string
	Email           string
	Phone           string
	Country         string
	City            string
	Gender          string
	Password        string
	ConfirmPassword string
	// SetPassword enables the password rules.
	SetPassword bool
}

// Validate returns nil when f passes every rule, otherwise the first failing
// rule as an *Error.
func Validate(f Fields) error {
	name := strings.TrimSpace(f.FullName)
	if len(name) < minNameLength {
		return ErrNameTooShort
	}
	if !lettersPattern.MatchString(name) {
		return ErrNameCharacters
	}

	position := constant.Position(f.Position)
	if position == "" || position == constant.PositionUnset {
		return ErrPositionMissing
	}
	if !position.Valid() {
		return ErrPositionInvalid
	}

	if !ValidEmail(f.Email) {
		return ErrEmailInvalid
	}

	if _, ok := NormalizePhone(f.Phone); !ok {
		return ErrPhoneDigits
	}

	country, city := strings.TrimSpace(f.Country), strings.TrimSpace(f.City)
	if country == "" || city == "" {
		return ErrLocationMissing
	}
	if !lettersPattern.MatchString(country) || !lettersPattern.MatchString(city) {
		return ErrLocationInvalid
	}

	if !constant.Gender(f.Gender).Valid() {
		return ErrGenderInvalid
	}

	if f.SetPassword {
		if !StrongPassword(f.Password) {
			return ErrPasswordWeak
		}
		if len(f.Password) > maxPasswordBytes {
			return ErrPasswordLong
		}
		if f.Password != f.ConfirmPassword {
			return ErrPasswordMatch
		}
	}

	return nil
}

// ValidEmail checks the simplified local@domain.tld shape.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// StrongPassword requires at least five characters including a letter, a
// digit and a symbol.
func StrongPassword(password string) bool {
	if len([]rune(password)) < minPasswordLength {
		return false
	}

	var letter, digit, symbol bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			letter = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			symbol = true
		}
	}
	return letter && digit && symbol
}

// SplitPhone separates a known dialing prefix from the subscriber number.
// Numbers without a known prefix are returned whole with the default prefix.
func SplitPhone(phone string) (constant.PhonePrefix, string) {
	for _, prefix := range constant.PhonePrefixes {
		if strings.HasPrefix(phone, string(prefix)) {
			return prefix, phone[len(prefix):]
		}
	}
	return constant.DefaultPhonePrefix, phone
}

// NormalizePhone returns the stored <prefix><10 digits> form of phone, or
// false when the subscriber part is not exactly ten digits.
func NormalizePhone(phone string) (string, bool) {
	prefix, number := SplitPhone(strings.TrimSpace(phone))
	if len(number) != constant.PhoneDigits {
		return "", false
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return string(prefix) + number, true
}
