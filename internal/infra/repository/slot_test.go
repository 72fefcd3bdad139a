//go:build unit

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"slot-booking/internal/domain/slot"
	"slot-booking/internal/domain/timerange"
	"slot-booking/internal/infra"
	sqlc "slot-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSlotWriteQueries struct {
	mock.Mock
}

func (m *MockSlotWriteQueries) CreateSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSlotParams) (sqlc.Slots, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Slots), args.Error(1)
}

func (m *MockSlotWriteQueries) CreateSlotIfNoOverlap(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSlotIfNoOverlapParams) (sqlc.Slots, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Slots), args.Error(1)
}

func (m *MockSlotWriteQueries) UpdateSlotRange(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSlotRangeParams) (sqlc.Slots, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Slots), args.Error(1)
}

func (m *MockSlotWriteQueries) SetSlotAvailability(ctx context.Context, db sqlc.DBTX, arg sqlc.SetSlotAvailabilityParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSlotWriteQueries) DeleteSlot(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

// mockDBTX satisfies sqlc.DBTX; the queries mock never touches it.
type mockDBTX struct{}

func (mockDBTX) Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (mockDBTX) Query(context.Context, string, ...interface{}) (pgx.Rows, error) {
	return nil, nil
}

func (mockDBTX) QueryRow(context.Context, string, ...interface{}) pgx.Row {
	return nil
}

func newTestSlot(t *testing.T) *slot.Slot {
	t.Helper()
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	r, err := timerange.New(start, start.Add(time.Hour))
	require.NoError(t, err)
	return slot.NewSlot(uuid.New(), r, start.Add(-24*time.Hour))
}

func TestSlotRepository_Create(t *testing.T) {
	tests := []struct {
		name       string
		mockError  error
		wantError  bool
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success"},
		{
			name:       "exclusion violation",
			mockError:  &pgconn.PgError{Code: "23P01", ConstraintName: "slots_no_overlap"},
			wantError:  true,
			expectKind: infra.KindExclusionViolated,
		},
		{
			name:       "database error",
			mockError:  errors.New("connection reset"),
			wantError:  true,
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSlot(t)
			db := mockDBTX{}
			mockQueries := new(MockSlotWriteQueries)
			mockQueries.On("CreateSlot", mock.Anything, db, mock.MatchedBy(func(p sqlc.CreateSlotParams) bool {
				return p.ID == s.ID() && p.CompanyID == s.CompanyID() && p.IsAvailable &&
					p.StartTime.Time.Equal(s.Start()) && p.EndTime.Time.Equal(s.End())
			})).Return(sqlc.Slots{}, tt.mockError)

			repo := NewSlotRepository(mockQueries)
			err := repo.Create(context.Background(), db, s)

			if tt.wantError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.expectKind), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestSlotRepository_CreateIfNoOverlap(t *testing.T) {
	tests := []struct {
		name        string
		mockError   error
		wantCreated bool
		wantError   bool
	}{
		{name: "inserted", wantCreated: true},
		{name: "skipped on conflict", mockError: pgx.ErrNoRows, wantCreated: false},
		{name: "database error", mockError: errors.New("connection reset"), wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSlot(t)
			mockQueries := new(MockSlotWriteQueries)
			mockQueries.On("CreateSlotIfNoOverlap", mock.Anything, mock.Anything, mock.Anything).Return(sqlc.Slots{}, tt.mockError)

			repo := NewSlotRepository(mockQueries)
			created, err := repo.CreateIfNoOverlap(context.Background(), mockDBTX{}, s)

			if tt.wantError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantCreated, created)
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestSlotRepository_SetAvailability(t *testing.T) {
	slotID := uuid.New()
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		rows       int64
		mockError  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success", rows: 1},
		{name: "slot not found", rows: 0, expectKind: infra.KindNotFound},
		{name: "lock timeout", mockError: &pgconn.PgError{Code: "55P03"}, expectKind: infra.KindConcurrency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockSlotWriteQueries)
			mockQueries.On("SetSlotAvailability", mock.Anything, mock.Anything, sqlc.SetSlotAvailabilityParams{
				ID:          slotID,
				IsAvailable: false,
				UpdatedAt:   pgtypeTime(at),
			}).Return(tt.rows, tt.mockError)

			repo := NewSlotRepository(mockQueries)
			err := repo.SetAvailability(context.Background(), mockDBTX{}, slotID, false, at)

			if tt.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.expectKind), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestSlotRepository_Delete(t *testing.T) {
	slotID := uuid.New()

	tests := []struct {
		name       string
		rows       int64
		mockError  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success", rows: 1},
		{name: "slot not found", rows: 0, expectKind: infra.KindNotFound},
		{
			name:       "restricted by bookings",
			mockError:  &pgconn.PgError{Code: "23503", ConstraintName: "bookings_slot_id_fkey"},
			expectKind: infra.KindForeignKeyViolated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockSlotWriteQueries)
			mockQueries.On("DeleteSlot", mock.Anything, mock.Anything, slotID).Return(tt.rows, tt.mockError)

			repo := NewSlotRepository(mockQueries)
			err := repo.Delete(context.Background(), mockDBTX{}, slotID)

			if tt.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.expectKind), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}
