package response

import (
	"time"

	"padel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type PublicCourtResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Surface          string    `json:"surface"`
	HourlyPriceCents int64     `json:"hourly_price_cents"`
}

type CourtResponse struct {
	PublicCourtResponse
	IsActive  bool      `json:"is_active"`
	SortOrder int       `json:"sort_order"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PublicTimeSlotResponse struct {
	ID        uuid.UUID `json:"id"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Label     string    `json:"label"`
}

type TimeSlotResponse struct {
	PublicTimeSlotResponse
	IsActive  bool      `json:"is_active"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ContentResponse struct {
	Key       string    `json:"key"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Published bool      `json:"published"`
	UpdatedAt time.Time `json:"updated_at"`
}

func publicCourt(v *queries.CourtView) PublicCourtResponse {
	return PublicCourtResponse{
		ID:               v.ID,
		Name:             v.Name,
		Description:      v.Description,
		Surface:          v.Surface,
		HourlyPriceCents: v.HourlyPriceCents,
	}
}

func FromPublicCourts(items []*queries.CourtView) []*PublicCourtResponse {
	return lo.Map(items, func(v *queries.CourtView, _ int) *PublicCourtResponse {
		res := publicCourt(v)
		return &res
	})
}

func FromCourtView(v *queries.CourtView) *CourtResponse {
	return &CourtResponse{
		PublicCourtResponse: publicCourt(v),
		IsActive:            v.IsActive,
		SortOrder:           v.SortOrder,
		UpdatedAt:           v.UpdatedAt,
	}
}

func FromCourts(items []*queries.CourtView) []*CourtResponse {
	return lo.Map(items, func(v *queries.CourtView, _ int) *CourtResponse { return FromCourtView(v) })
}

func publicTimeSlot(v *queries.TimeSlotView) PublicTimeSlotResponse {
	return PublicTimeSlotResponse{
		ID:        v.ID,
		StartTime: v.StartTime,
		EndTime:   v.EndTime,
		Label:     v.Label,
	}
}

func FromPublicTimeSlots(items []*queries.TimeSlotView) []*PublicTimeSlotResponse {
	return lo.Map(items, func(v *queries.TimeSlotView, _ int) *PublicTimeSlotResponse {
		res := publicTimeSlot(v)
		return &res
	})
}

func FromTimeSlotView(v *queries.TimeSlotView) *TimeSlotResponse {
	return &TimeSlotResponse{
		PublicTimeSlotResponse: publicTimeSlot(v),
		IsActive:               v.IsActive,
		UpdatedAt:              v.UpdatedAt,
	}
}

func FromTimeSlots(items []*queries.TimeSlotView) []*TimeSlotResponse {
	return lo.Map(items, func(v *queries.TimeSlotView, _ int) *TimeSlotResponse { return FromTimeSlotView(v) })
}

func FromContentView(v *queries.ContentView) *ContentResponse {
	return &ContentResponse{
		Key:       v.Key,
		Title:     v.Title,
		Body:      v.Body,
		Published: v.Published,
		UpdatedAt: v.UpdatedAt,
	}
}

func FromContentList(items []*queries.ContentView) []*ContentResponse {
	return lo.Map(items, func(v *queries.ContentView, _ int) *ContentResponse { return FromContentView(v) })
}
