package court

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrInvalidName     = errors.New("court name is required and must be at most 80 characters")
	ErrNegativePrice   = errors.New("hourly price cannot be negative")
	ErrInvalidSurface  = errors.New("invalid court surface")
	ErrCourtNotActive  = errors.New("court is not active")
	ErrDescriptionSize = errors.New("description must be at most 1000 characters")
)

type Surface string

const (
	SurfaceIndoor  Surface = "indoor"
	SurfaceOutdoor Surface = "outdoor"
)

func NewSurface(s string) (Surface, error) {
	switch Surface(s) {
	case SurfaceIndoor, SurfaceOutdoor:
		return Surface(s), nil
	default:
		return "", ErrInvalidSurface
	}
}

type Court struct {
	id               uuid.UUID
	name             string
	description      string
	surface          Surface
	hourlyPriceCents int64
	isActive         bool
	sortOrder        int
	createdAt        time.Time
	updatedAt        time.Time
}

type Attributes struct {
	Name             string
	Description      string
	Surface          Surface
	HourlyPriceCents int64
	IsActive         bool
	SortOrder        int
}

func NewCourt(a Attributes) (*Court, error) {
	c := &Court{id: uuid.New()}
	if err := c.apply(a); err != nil {
		return nil, err
	}
	return c, nil
}

func ReconstructCourt(id uuid.UUID, a Attributes, createdAt, updatedAt time.Time) *Court {
	return &Court{
		id:               id,
		name:             a.Name,
		description:      a.Description,
		surface:          a.Surface,
		hourlyPriceCents: a.HourlyPriceCents,
		isActive:         a.IsActive,
		sortOrder:        a.SortOrder,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// Update replaces all attributes after validating them.
func (c *Court) Update(a Attributes) error {
	return c.apply(a)
}

func (c *Court) apply(a Attributes) error {
	name := strings.TrimSpace(a.Name)
	if name == "" || utf8.RuneCountInString(name) > 80 {
		return ErrInvalidName
	}
	if utf8.RuneCountInString(a.Description) > 1000 {
		return ErrDescriptionSize
	}
	if _, err := NewSurface(string(a.Surface)); err != nil {
		return err
	}
	if a.HourlyPriceCents < 0 {
		return ErrNegativePrice
	}
	c.name = name
	c.description = strings.TrimSpace(a.Description)
	c.surface = a.Surface
	c.hourlyPriceCents = a.HourlyPriceCents
	c.isActive = a.IsActive
	c.sortOrder = a.SortOrder
	return nil
}

// PriceCents prices a booking of duration d, rounding to the nearest cent.
func (c *Court) PriceCents(d time.Duration) int64 {
	minutes := int64(d / time.Minute)
	return (c.hourlyPriceCents*minutes + 30) / 60
}

func (c *Court) Attributes() Attributes {
	return Attributes{
		Name:             c.name,
		Description:      c.description,
		Surface:          c.surface,
		HourlyPriceCents: c.hourlyPriceCents,
		IsActive:         c.isActive,
		SortOrder:        c.sortOrder,
	}
}

func (c *Court) ID() uuid.UUID           { return c.id }
func (c *Court) Name() string            { return c.name }
func (c *Court) Description() string     { return c.description }
func (c *Court) Surface() Surface        { return c.surface }
func (c *Court) HourlyPriceCents() int64 { return c.hourlyPriceCents }
func (c *Court) IsActive() bool          { return c.isActive }
func (c *Court) SortOrder() int          { return c.sortOrder }
func (c *Court) CreatedAt() time.Time    { return c.createdAt }
func (c *Court) UpdatedAt() time.Time    { return c.updatedAt }
