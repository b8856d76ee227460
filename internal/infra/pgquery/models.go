package pgquery

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserRow struct {
	ID           uuid.UUID          `db:"id"`
	Email        string             `db:"email"`
	DisplayName  string             `db:"display_name"`
	PasswordHash string             `db:"password_hash"`
	Role         string             `db:"role"`
	IsActive     bool               `db:"is_active"`
	LastLogin    pgtype.Timestamptz `db:"last_login"`
	CreatedAt    time.Time          `db:"created_at"`
	UpdatedAt    time.Time          `db:"updated_at"`
}

type CourtRow struct {
	ID               uuid.UUID `db:"id"`
	Name             string    `db:"name"`
	Description      string    `db:"description"`
	Surface          string    `db:"surface"`
	HourlyPriceCents int64     `db:"hourly_price_cents"`
	IsActive         bool      `db:"is_active"`
	SortOrder        int32     `db:"sort_order"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

type TimeSlotRow struct {
	ID        uuid.UUID `db:"id"`
	StartTime string    `db:"start_time"`
	EndTime   string    `db:"end_time"`
	Label     string    `db:"label"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// BookingRow carries the booking columns plus the court and slot it refers to.
type BookingRow struct {
	ID            uuid.UUID          `db:"id"`
	BookingRef    string             `db:"booking_ref"`
	CourtID       uuid.UUID          `db:"court_id"`
	CourtName     string             `db:"court_name"`
	TimeSlotID    uuid.UUID          `db:"time_slot_id"`
	StartTime     string             `db:"start_time"`
	EndTime       string             `db:"end_time"`
	BookingDate   pgtype.Date        `db:"booking_date"`
	CustomerName  string             `db:"customer_name"`
	CustomerEmail string             `db:"customer_email"`
	CustomerPhone pgtype.Text        `db:"customer_phone"`
	Notes         pgtype.Text        `db:"notes"`
	Status        string             `db:"status"`
	PriceCents    int64              `db:"price_cents"`
	PaidAt        pgtype.Timestamptz `db:"paid_at"`
	CreatedAt     time.Time          `db:"created_at"`
	UpdatedAt     time.Time          `db:"updated_at"`
}

type ContentRow struct {
	Key       string    `db:"key"`
	Title     string    `db:"title"`
	Body      string    `db:"body"`
	Published bool      `db:"published"`
	UpdatedAt time.Time `db:"updated_at"`
}

type SettingRow struct {
	Key       string    `db:"key"`
	Value     string    `db:"value"`
	UpdatedAt time.Time `db:"updated_at"`
}

type NotificationRow struct {
	ID         uuid.UUID          `db:"id"`
	Kind       string             `db:"kind"`
	Title      string             `db:"title"`
	Body       string             `db:"body"`
	BookingRef pgtype.Text        `db:"booking_ref"`
	ReadAt     pgtype.Timestamptz `db:"read_at"`
	CreatedAt  time.Time          `db:"created_at"`
}

type StatusCountRow struct {
	Status string `db:"status"`
	Count  int64  `db:"count"`
}

type CourtCountRow struct {
	CourtID   uuid.UUID `db:"court_id"`
	CourtName string    `db:"court_name"`
	Count     int64     `db:"count"`
}
