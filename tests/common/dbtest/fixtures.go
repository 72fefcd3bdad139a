//go:build integration

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both a pool and a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func createUser(t *testing.T, db DBLike, username string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO users (id, username, email, password_hash) VALUES ($1, $2, $3, $4)",
		userID, username, username+"@example.com", testPasswordHash)
	require.NoError(t, err)
	return userID
}

// CreateCompany inserts a user owning a company profile and returns the company id.
func CreateCompany(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	userID := createUser(t, db, "company_"+strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
	companyID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO companies (id, user_id, name) VALUES ($1, $2, $3)",
		companyID, userID, name)
	require.NoError(t, err)
	return companyID
}

// CreateClient inserts a user owning a client profile and returns the client id.
func CreateClient(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	userID := createUser(t, db, "client_"+strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
	clientID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO clients (id, user_id, name) VALUES ($1, $2, $3)",
		clientID, userID, name)
	require.NoError(t, err)
	return clientID
}

func CreateServiceType(t *testing.T, db DBLike, companyID uuid.UUID, name string, durationMinutes int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO service_types (id, company_id, name, duration_minutes, price_cents) VALUES ($1, $2, $3, $4, $5)",
		id, companyID, name, durationMinutes, 5000)
	require.NoError(t, err)
	return id
}

func CreateSlot(t *testing.T, db DBLike, companyID uuid.UUID, start, end time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO slots (id, company_id, start_time, end_time) VALUES ($1, $2, $3, $4)",
		id, companyID, start, end)
	require.NoError(t, err)
	return id
}

func SlotAvailable(t *testing.T, db DBLike, slotID uuid.UUID) bool {
	t.Helper()

	var available bool
	err := db.QueryRow(context.Background(), "SELECT is_available FROM slots WHERE id = $1", slotID).Scan(&available)
	require.NoError(t, err)
	return available
}

func CountBookings(t *testing.T, db DBLike, slotID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM bookings WHERE slot_id = $1", slotID).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountSlots(t *testing.T, db DBLike, companyID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM slots WHERE company_id = $1", companyID).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every table in the public schema.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'`)
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
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
