package request

import (
	"padel-booking/internal/domain/court"
	"padel-booking/internal/pkg/patch"
)

type CourtRequest struct {
	Name             string `json:"name" binding:"required,max=80"`
	Description      string `json:"description" binding:"max=1000"`
	Surface          string `json:"surface" binding:"required,oneof=indoor outdoor"`
	HourlyPriceCents *int64 `json:"hourly_price_cents" binding:"required,min=0"`
	IsActive         *bool  `json:"is_active,omitempty"`
	SortOrder        int    `json:"sort_order" binding:"min=0,max=10000"`
}

// ToAttributes treats a missing is_active as active.
func (r CourtRequest) ToAttributes() court.Attributes {
	return court.Attributes{
		Name:             r.Name,
		Description:      r.Description,
		Surface:          court.Surface(r.Surface),
		HourlyPriceCents: patch.Coalesce(r.HourlyPriceCents, 0),
		IsActive:         patch.Coalesce(r.IsActive, true),
		SortOrder:        r.SortOrder,
	}
}

type TimeSlotRequest struct {
	StartTime string `json:"start_time" binding:"required,datetime=15:04"`
	EndTime   string `json:"end_time" binding:"required,datetime=15:04"`
	Label     string `json:"label" binding:"max=40"`
	IsActive  *bool  `json:"is_active,omitempty"`
}

func (r TimeSlotRequest) Active() bool {
	return patch.Coalesce(r.IsActive, true)
}

type UpsertContentRequest struct {
	Title     string `json:"title" binding:"max=200"`
	Body      string `json:"body" binding:"max=20000"`
	Published *bool  `json:"published,omitempty"`
}

func (r UpsertContentRequest) IsPublished() bool {
	return patch.Coalesce(r.Published, false)
}
