package request

import (
	"padel-booking/internal/domain/setting"
	"padel-booking/internal/pkg/patch"
)

// UpdateSettingsRequest is a partial update; omitted fields keep their stored value.
type UpdateSettingsRequest struct {
	BusinessName  *string `json:"business_name,omitempty" binding:"omitempty,max=120"`
	ContactEmail  *string `json:"contact_email,omitempty" binding:"omitempty,max=254"`
	ContactPhone  *string `json:"contact_phone,omitempty" binding:"omitempty,max=32"`
	Currency      *string `json:"currency,omitempty" binding:"omitempty,len=3"`
	ClosedMessage *string `json:"closed_message,omitempty" binding:"omitempty,max=300"`
}

func (r UpdateSettingsRequest) IsEmpty() bool {
	return patch.Empty(r.BusinessName, r.ContactEmail, r.ContactPhone, r.Currency, r.ClosedMessage)
}

func (r UpdateSettingsRequest) Apply(current setting.Settings) setting.Settings {
	next := current
	next.BusinessName = patch.Coalesce(r.BusinessName, current.BusinessName)
	next.ContactEmail = patch.Coalesce(r.ContactEmail, current.ContactEmail)
	next.ContactPhone = patch.Coalesce(r.ContactPhone, current.ContactPhone)
	next.Currency = patch.Coalesce(r.Currency, current.Currency)
	next.ClosedMessage = patch.Coalesce(r.ClosedMessage, current.ClosedMessage)
	return next
}

type BookingWindowRequest struct {
	Open    *bool   `json:"open" binding:"required"`
	Message *string `json:"message,omitempty" binding:"omitempty,max=300"`
}
