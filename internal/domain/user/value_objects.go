package user

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

// NewEmail trims and lowercases so uniqueness is case-insensitive.
func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type Credentials struct {
	email    Email
	password Password
}

// NewCredentials validates login input. Any malformed part is reported as
// bad credentials so the response does not reveal which field was wrong.
func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := NewEmail(emailStr)
	if err != nil {
		return Credentials{}, ErrInvalidCredentials
	}

	password, err := NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, ErrInvalidCredentials
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() Email {
	return c.email
}

func (c Credentials) Password() Password {
	return c.password
}

type Address struct {
	Type      AddressType `json:"type"`
	Street    string      `json:"street"`
	City      string      `json:"city"`
	State     string      `json:"state"`
	ZipCode   string      `json:"zipCode"`
	Country   string      `json:"country"`
	IsDefault bool        `json:"isDefault"`
}

func (a Address) Validate() error {
	switch a.Type {
	case AddressHome, AddressWork, AddressOther:
		return nil
	default:
		return ErrInvalidAddressType
	}
}

// Preferences is stored as a JSON object; unknown keys survive a merge.
type Preferences map[string]bool

const (
	PrefNewsletter    = "newsletter"
	PrefNotifications = "notifications"
)

func DefaultPreferences() Preferences {
	return Preferences{PrefNewsletter: true, PrefNotifications: true}
}
