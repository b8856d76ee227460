//go:build unit || e2e

package builder

import (
	"time"

	"padel-booking/internal/domain/court"
	"padel-booking/internal/domain/timeslot"
	reqdto "padel-booking/internal/handler/dto/request"
	"padel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CourtBuilder struct {
	ID               uuid.UUID
	Name             string
	Description      string
	Surface          string
	HourlyPriceCents int64
	IsActive         bool
	SortOrder        int
}

func NewCourtBuilder() *CourtBuilder {
	return &CourtBuilder{
		ID:               uuid.New(),
		Name:             "Court 1",
		Description:      "Panoramic glass court",
		Surface:          "indoor",
		HourlyPriceCents: 2400,
		IsActive:         true,
		SortOrder:        1,
	}
}

func (b *CourtBuilder) Inactive() *CourtBuilder {
	b.IsActive = false
	return b
}

func (b *CourtBuilder) attributes() court.Attributes {
	return court.Attributes{
		Name:             b.Name,
		Description:      b.Description,
		Surface:          court.Surface(b.Surface),
		HourlyPriceCents: b.HourlyPriceCents,
		IsActive:         b.IsActive,
		SortOrder:        b.SortOrder,
	}
}

func (b *CourtBuilder) BuildEntity() *court.Court {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return court.ReconstructCourt(b.ID, b.attributes(), now, now)
}

func (b *CourtBuilder) BuildView() *queries.CourtView {
	return &queries.CourtView{
		ID:               b.ID,
		Name:             b.Name,
		Description:      b.Description,
		Surface:          b.Surface,
		HourlyPriceCents: b.HourlyPriceCents,
		IsActive:         b.IsActive,
		SortOrder:        b.SortOrder,
	}
}

func (b *CourtBuilder) BuildDTO() reqdto.CourtRequest {
	price := b.HourlyPriceCents
	active := b.IsActive
	return reqdto.CourtRequest{
		Name:             b.Name,
		Description:      b.Description,
		Surface:          b.Surface,
		HourlyPriceCents: &price,
		IsActive:         &active,
		SortOrder:        b.SortOrder,
	}
}

type TimeSlotBuilder struct {
	ID       uuid.UUID
	Start    string
	End      string
	Label    string
	IsActive bool
}

func NewTimeSlotBuilder() *TimeSlotBuilder {
	return &TimeSlotBuilder{
		ID:       uuid.New(),
		Start:    "18:00",
		End:      "19:30",
		Label:    "Evening",
		IsActive: true,
	}
}

func (b *TimeSlotBuilder) Inactive() *TimeSlotBuilder {
	b.IsActive = false
	return b
}

func (b *TimeSlotBuilder) BuildEntity() *timeslot.TimeSlot {
	start, err := timeslot.ParseClockTime(b.Start)
	if err != nil {
		panic(err)
	}
	end, err := timeslot.ParseClockTime(b.End)
	if err != nil {
		panic(err)
	}
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return timeslot.ReconstructTimeSlot(b.ID, start, end, b.Label, b.IsActive, now, now)
}

func (b *TimeSlotBuilder) BuildDTO() reqdto.TimeSlotRequest {
	active := b.IsActive
	return reqdto.TimeSlotRequest{
		StartTime: b.Start,
		EndTime:   b.End,
		Label:     b.Label,
		IsActive:  &active,
	}
}

func (b *TimeSlotBuilder) BuildView() *queries.TimeSlotView {
	return &queries.TimeSlotView{
		ID:        b.ID,
		StartTime: b.Start,
		EndTime:   b.End,
		Label:     b.Label,
		IsActive:  b.IsActive,
	}
}
