package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

import (
	"context"
	"time"

	"slot-booking/internal/domain/booking"
	"slot-booking/internal/domain/servicetype"
	"slot-booking/internal/domain/slot"
	"slot-booking/internal/domain/timerange"
	"slot-booking/internal/domain/user"
	sqlc "slot-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single statement operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Slots() SlotRepository
	Bookings() BookingRepository
	ServiceTypes() ServiceTypeRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	SlotByID(ctx context.Context, id uuid.UUID) (*SlotSnapshot, error)
	// SlotForUpdate takes a row lock held until the surrounding transaction ends.
	SlotForUpdate(ctx context.Context, id uuid.UUID) (*SlotSnapshot, error)
	BookingForUpdate(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	ServiceTypeByID(ctx context.Context, id uuid.UUID) (*ServiceTypeSnapshot, error)
	ClientByID(ctx context.Context, id uuid.UUID) (*ClientSnapshot, error)
	CompanyByID(ctx context.Context, id uuid.UUID) (*CompanySnapshot, error)
	// CountOverlappingSlots counts company slots overlapping r, ignoring excludeID.
	CountOverlappingSlots(ctx context.Context, companyID uuid.UUID, r timerange.TimeRange, excludeID uuid.UUID) (int64, error)
	CountBookingsForSlot(ctx context.Context, slotID uuid.UUID) (int64, error)
}

type SlotRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, s *slot.Slot) error
	// CreateIfNoOverlap reports false when the exclusion constraint rejected the row.
	CreateIfNoOverlap(ctx context.Context, tx sqlc.DBTX, s *slot.Slot) (bool, error)
	UpdateRange(ctx context.Context, tx sqlc.DBTX, s *slot.Slot) error
	SetAvailability(ctx context.Context, tx sqlc.DBTX, slotID uuid.UUID, available bool, at time.Time) error
	Delete(ctx context.Context, tx sqlc.DBTX, slotID uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	Delete(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID) error
}

type ServiceTypeRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, st *servicetype.ServiceType) error
}

type UserRepository interface {
	// Create writes the user row and its profile row.
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error
}
