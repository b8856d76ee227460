package booking

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	maxNameLength  = 100
	maxPhoneLength = 32
	maxNotesLength = 500
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Customer struct {
	name  string
	email string
	phone string
}

func NewCustomer(name, email, phone string) (Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > maxNameLength {
		return Customer{}, ErrInvalidCustomerName
	}

	email = strings.TrimSpace(email)
	if !emailRegex.MatchString(email) {
		return Customer{}, ErrInvalidEmail
	}

	phone = strings.TrimSpace(phone)
	if utf8.RuneCountInString(phone) > maxPhoneLength {
		return Customer{}, ErrInvalidPhone
	}

	return Customer{name: name, email: email, phone: phone}, nil
}

func (c Customer) Name() string  { return c.name }
func (c Customer) Email() string { return c.email }
func (c Customer) Phone() string { return c.phone }

func (c Customer) EmailMatches(email string) bool {
	return EmailMatches(c.email, email)
}

// EmailMatches compares two addresses ignoring case and surrounding whitespace.
func EmailMatches(stored, given string) bool {
	return strings.EqualFold(strings.TrimSpace(stored), strings.TrimSpace(given))
}

type Notes struct {
	value string
}

func NewNotes(s string) (Notes, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > maxNotesLength {
		return Notes{}, ErrNotesTooLong
	}
	return Notes{value: s}, nil
}

func (n Notes) Value() string { return n.value }
