//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"padel-booking/internal/domain/user"
	"padel-booking/internal/infra/pgquery"
	"padel-booking/internal/infra/repository"
	"padel-booking/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const DefaultPassword = "password123"

// reference rows recreated by every ResetDB
var (
	CentreCourtID  = uuid.MustParse("0b7e7c36-4f1a-4c1e-9a53-1f0c2d8f7a01")
	OutdoorCourtID = uuid.MustParse("0b7e7c36-4f1a-4c1e-9a53-1f0c2d8f7a02")
	ClosedCourtID  = uuid.MustParse("0b7e7c36-4f1a-4c1e-9a53-1f0c2d8f7a03")

	MorningSlotID = uuid.MustParse("6d1f4a52-8c77-4b0e-b2c4-5e9a0d3c1b01")
	EveningSlotID = uuid.MustParse("6d1f4a52-8c77-4b0e-b2c4-5e9a0d3c1b02")
	RetiredSlotID = uuid.MustParse("6d1f4a52-8c77-4b0e-b2c4-5e9a0d3c1b03")
)

var (
	hashOnce   sync.Once
	hashedPass string
)

func defaultPasswordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		h, err := password.HashPasswordWithCost(DefaultPassword, bcrypt.MinCost)
		if err == nil {
			hashedPass = h
		}
	})
	require.NotEmpty(t, hashedPass, "failed to hash default password")
	return hashedPass
}

// CreateTestUser stores an admin user through the write repository and returns its id.
// The password is DefaultPassword.
func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	e, err := user.NewEmail(email)
	require.NoError(t, err)
	r, err := user.NewRole(role)
	require.NoError(t, err)

	u := user.NewUser(e, strings.Split(email, "@")[0], defaultPasswordHash(t), r)
	repo := repository.NewUserRepository(pgquery.New(), db)
	require.NoError(t, repo.Create(context.Background(), u, time.Now()))

	return u.ID()
}

func DeactivateUser(t *testing.T, db DBLike, email string) {
	t.Helper()
	_, err := db.Exec(context.Background(), "UPDATE admin_users SET is_active = false WHERE email = $1", email)
	require.NoError(t, err)
}

func CloseBookings(t *testing.T, db DBLike, message string) {
	t.Helper()
	_, err := db.Exec(context.Background(), `
		INSERT INTO settings (key, value) VALUES ('bookings_open', 'false'), ('closed_message', $1)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`, message)
	require.NoError(t, err)
}

func BookingStatus(t *testing.T, db DBLike, ref string) string {
	t.Helper()
	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM bookings WHERE booking_ref = $1", ref).Scan(&status)
	require.NoError(t, err)
	return status
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO courts (id, name, description, surface, hourly_price_cents, is_active, sort_order) VALUES
		    ($1, 'Centre Court', 'Panoramic glass', 'indoor', 3200, true, 1),
		    ($2, 'Garden Court', '', 'outdoor', 2400, true, 2),
		    ($3, 'Court 7', 'Under repair', 'outdoor', 2400, false, 7)
		ON CONFLICT (id) DO NOTHING;
	`, CentreCourtID, OutdoorCourtID, ClosedCourtID)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO time_slots (id, start_time, end_time, label, is_active) VALUES
		    ($1, '09:00', '10:30', 'Morning', true),
		    ($2, '19:00', '20:00', 'Evening', true),
		    ($3, '23:00', '23:30', 'Late', false)
		ON CONFLICT (id) DO NOTHING;
	`, MorningSlotID, EveningSlotID, RetiredSlotID)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
