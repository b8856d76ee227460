package setting

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

const (
	KeyBusinessName  = "business_name"
	KeyContactEmail  = "contact_email"
	KeyContactPhone  = "contact_phone"
	KeyCurrency      = "currency"
	KeyBookingsOpen  = "bookings_open"
	KeyClosedMessage = "closed_message"
)

const DefaultClosedMessage = "Bookings are currently closed"

var (
	ErrInvalidCurrency     = errors.New("currency must be a 3-letter ISO code")
	ErrInvalidContactEmail = errors.New("invalid contact email")
	ErrBusinessNameMissing = errors.New("business name is required")
)

var (
	currencyRegex = regexp.MustCompile(`^[A-Z]{3}$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// Settings is the typed view over the key/value settings table.
type Settings struct {
	BusinessName  string
	ContactEmail  string
	ContactPhone  string
	Currency      string
	BookingsOpen  bool
	ClosedMessage string
}

func Defaults() Settings {
	return Settings{
		BusinessName:  "Padel Club",
		Currency:      "EUR",
		BookingsOpen:  true,
		ClosedMessage: DefaultClosedMessage,
	}
}

// FromMap overlays stored rows on the defaults. Unknown keys are ignored.
func FromMap(m map[string]string) Settings {
	s := Defaults()
	if v, ok := m[KeyBusinessName]; ok {
		s.BusinessName = v
	}
	if v, ok := m[KeyContactEmail]; ok {
		s.ContactEmail = v
	}
	if v, ok := m[KeyContactPhone]; ok {
		s.ContactPhone = v
	}
	if v, ok := m[KeyCurrency]; ok {
		s.Currency = v
	}
	if v, ok := m[KeyBookingsOpen]; ok {
		if b, err := strconv.ParseBool(v); err == nil {
			s.BookingsOpen = b
		}
	}
	if v, ok := m[KeyClosedMessage]; ok && v != "" {
		s.ClosedMessage = v
	}
	return s
}

func (s Settings) ToMap() map[string]string {
	return map[string]string{
		KeyBusinessName:  s.BusinessName,
		KeyContactEmail:  s.ContactEmail,
		KeyContactPhone:  s.ContactPhone,
		KeyCurrency:      s.Currency,
		KeyBookingsOpen:  strconv.FormatBool(s.BookingsOpen),
		KeyClosedMessage: s.ClosedMessage,
	}
}

func (s Settings) Validate() error {
	if strings.TrimSpace(s.BusinessName) == "" {
		return ErrBusinessNameMissing
	}
	if !currencyRegex.MatchString(s.Currency) {
		return ErrInvalidCurrency
	}
	if s.ContactEmail != "" && !emailRegex.MatchString(s.ContactEmail) {
		return ErrInvalidContactEmail
	}
	return nil
}

func (s Settings) BookingWindow() BookingWindow {
	return NewBookingWindow(s.BookingsOpen, s.ClosedMessage)
}
