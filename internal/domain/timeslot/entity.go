package timeslot

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrStartNotBeforeEnd = errors.New("start time must be before end time")
	ErrLabelTooLong      = errors.New("label must be at most 40 characters")
	ErrSlotNotActive     = errors.New("time slot is not active")
)

type TimeSlot struct {
	id        uuid.UUID
	start     ClockTime
	end       ClockTime
	label     string
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewTimeSlot(start, end, label string, isActive bool) (*TimeSlot, error) {
	ts := &TimeSlot{id: uuid.New()}
	if err := ts.Update(start, end, label, isActive); err != nil {
		return nil, err
	}
	return ts, nil
}

func ReconstructTimeSlot(id uuid.UUID, start, end ClockTime, label string, isActive bool, createdAt, updatedAt time.Time) *TimeSlot {
	return &TimeSlot{
		id:        id,
		start:     start,
		end:       end,
		label:     label,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (ts *TimeSlot) Update(start, end, label string, isActive bool) error {
	s, err := ParseClockTime(start)
	if err != nil {
		return err
	}
	e, err := ParseClockTime(end)
	if err != nil {
		return err
	}
	if !s.Before(e) {
		return ErrStartNotBeforeEnd
	}
	label = strings.TrimSpace(label)
	if len([]rune(label)) > 40 {
		return ErrLabelTooLong
	}
	if label == "" {
		label = s.String() + " - " + e.String()
	}
	ts.start, ts.end, ts.label, ts.isActive = s, e, label, isActive
	return nil
}

func (ts *TimeSlot) Duration() time.Duration {
	return time.Duration(ts.end.Minutes()-ts.start.Minutes()) * time.Minute
}

func (ts *TimeSlot) ID() uuid.UUID        { return ts.id }
func (ts *TimeSlot) Start() ClockTime     { return ts.start }
func (ts *TimeSlot) End() ClockTime       { return ts.end }
func (ts *TimeSlot) Label() string        { return ts.label }
func (ts *TimeSlot) IsActive() bool       { return ts.isActive }
func (ts *TimeSlot) CreatedAt() time.Time { return ts.createdAt }
func (ts *TimeSlot) UpdatedAt() time.Time { return ts.updatedAt }
