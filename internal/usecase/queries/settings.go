package queries

import (
	"context"

	"padel-booking/internal/domain/setting"
)

type SettingsView struct {
	BusinessName  string `json:"business_name"`
	ContactEmail  string `json:"contact_email"`
	ContactPhone  string `json:"contact_phone"`
	Currency      string `json:"currency"`
	BookingsOpen  bool   `json:"bookings_open"`
	ClosedMessage string `json:"closed_message"`
}

type BookingWindowView struct {
	Open    bool   `json:"open"`
	Message string `json:"message,omitempty"`
}

type SettingReadStore interface {
	All(ctx context.Context) (map[string]string, error)
}

type SettingsQueries interface {
	Get(ctx context.Context) (*SettingsView, error)
	BookingWindow(ctx context.Context) (*BookingWindowView, error)
}

type settingsQueriesImpl struct {
	store SettingReadStore
}

func NewSettingsQueries(store SettingReadStore) SettingsQueries {
	return &settingsQueriesImpl{store: store}
}

func (q *settingsQueriesImpl) Get(ctx context.Context) (*SettingsView, error) {
	s, err := q.load(ctx)
	if err != nil {
		return nil, err
	}
	return &SettingsView{
		BusinessName:  s.BusinessName,
		ContactEmail:  s.ContactEmail,
		ContactPhone:  s.ContactPhone,
		Currency:      s.Currency,
		BookingsOpen:  s.BookingsOpen,
		ClosedMessage: s.ClosedMessage,
	}, nil
}

func (q *settingsQueriesImpl) BookingWindow(ctx context.Context) (*BookingWindowView, error) {
	s, err := q.load(ctx)
	if err != nil {
		return nil, err
	}
	w := s.BookingWindow()
	return &BookingWindowView{Open: w.IsOpen(), Message: w.Message()}, nil
}

func (q *settingsQueriesImpl) load(ctx context.Context) (setting.Settings, error) {
	rows, err := q.store.All(ctx)
	if err != nil {
		return setting.Settings{}, err
	}
	return setting.FromMap(rows), nil
}
