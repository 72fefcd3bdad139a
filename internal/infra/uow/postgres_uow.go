package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"slot-booking/internal/domain/timerange"
	"slot-booking/internal/infra"
	"slot-booking/internal/infra/readstore"
	"slot-booking/internal/infra/repository"
	sqlc "slot-booking/internal/infra/sqlc/generated"
	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/pkg/metrics"
	"slot-booking/internal/usecase/queries"
	"slot-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	defaultMaxRetries  = 3
	defaultBaseBackoff = 100 * time.Millisecond
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type Options struct {
	MaxRetries  int
	BaseBackoff time.Duration
	// LockTimeout is applied with SET LOCAL to every write transaction. Zero disables it.
	LockTimeout time.Duration
	Metrics     *metrics.Metrics
}

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
	opts Options
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, opts Options) *PostgresUoW {
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = defaultMaxRetries
	}
	if opts.BaseBackoff <= 0 {
		opts.BaseBackoff = defaultBaseBackoff
	}
	return &PostgresUoW{
		pool: pool,
		q:    q,
		opts: opts,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	maxRetries := u.opts.MaxRetries

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		err = u.applyLockTimeout(ctx, pgxTx)
		if err == nil {
			err = fn(ctx, &pgTx{dbtx: pgxTx, uow: u})
		}
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if isRetryableError(err) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(errs.Mark(err, errMaxRetriesExceeded), errs.ErrConcurrencyConflict)
			}
			if infra.IsConcurrencyError(err) {
				slog.Warn("transaction gave up waiting for a lock", "error", err.Error())
				return errs.Mark(err, errs.ErrConcurrencyConflict)
			}
			return err
		}

		u.opts.Metrics.IncTxRetry()
		waitTime := calculateBackoff(attempt, u.opts.BaseBackoff)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) applyLockTimeout(ctx context.Context, tx pgx.Tx) error {
	if u.opts.LockTimeout <= 0 {
		return nil
	}
	// SET does not accept bind parameters
	stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", u.opts.LockTimeout.Milliseconds())
	if _, err := tx.Exec(ctx, stmt); err != nil {
		return infra.WrapRepoErr("failed to set lock timeout", err)
	}
	return nil
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- masked to a non-negative value
	return int64(uval) % n
}

// Serialization failures and deadlocks are retried; lock timeouts are not.
func isRetryableError(err error) bool {
	code := infra.PgErrorCode(err)
	return code == infra.PgErrCodeSerializationFailure || code == infra.PgErrCodeDeadlockDetected
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	slotRepo        shared.SlotRepository
	bookingRepo     shared.BookingRepository
	serviceTypeRepo shared.ServiceTypeRepository
	userRepo        shared.UserRepository
	commandReads    shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Slots() shared.SlotRepository {
	if t.slotRepo == nil {
		t.slotRepo = repository.NewSlotRepository(t.uow.q)
	}
	return t.slotRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q)
	}
	return t.bookingRepo
}

func (t *pgTx) ServiceTypes() shared.ServiceTypeRepository {
	if t.serviceTypeRepo == nil {
		t.serviceTypeRepo = repository.NewServiceTypeRepository(t.uow.q)
	}
	return t.serviceTypeRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.q)
	}
	return t.userRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	slotStore        *readstore.SlotReadStore
	bookingStore     *readstore.BookingReadStore
	serviceTypeStore *readstore.ServiceTypeReadStore
	profileStore     *readstore.ProfileReadStore
}

func (r *commandReads) slots() *readstore.SlotReadStore {
	if r.slotStore == nil {
		r.slotStore = readstore.NewSlotReadStore(r.uow.q, r.dbtx)
	}
	return r.slotStore
}

func (r *commandReads) bookings() *readstore.BookingReadStore {
	if r.bookingStore == nil {
		r.bookingStore = readstore.NewBookingReadStore(r.uow.q, r.dbtx)
	}
	return r.bookingStore
}

func (r *commandReads) profiles() *readstore.ProfileReadStore {
	if r.profileStore == nil {
		r.profileStore = readstore.NewProfileReadStore(r.uow.q, r.dbtx)
	}
	return r.profileStore
}

func (r *commandReads) SlotByID(ctx context.Context, id uuid.UUID) (*shared.SlotSnapshot, error) {
	v, err := r.slots().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSlotSnapshot(v), nil
}

func (r *commandReads) SlotForUpdate(ctx context.Context, id uuid.UUID) (*shared.SlotSnapshot, error) {
	v, err := r.slots().FindByIDForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSlotSnapshot(v), nil
}

func (r *commandReads) BookingForUpdate(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	v, err := r.bookings().FindByIDForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.BookingSnapshot{
		ID:            v.ID,
		SlotID:        v.SlotID,
		ServiceTypeID: v.ServiceTypeID,
		ClientID:      v.ClientID,
		Status:        v.Status,
		Notes:         v.Notes,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}, nil
}

func (r *commandReads) ServiceTypeByID(ctx context.Context, id uuid.UUID) (*shared.ServiceTypeSnapshot, error) {
	if r.serviceTypeStore == nil {
		r.serviceTypeStore = readstore.NewServiceTypeReadStore(r.uow.q, r.dbtx)
	}
	v, err := r.serviceTypeStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.ServiceTypeSnapshot{
		ID:              v.ID,
		CompanyID:       v.CompanyID,
		Name:            v.Name,
		DurationMinutes: int(v.DurationMinutes),
		PriceCents:      v.PriceCents,
	}, nil
}

func (r *commandReads) ClientByID(ctx context.Context, id uuid.UUID) (*shared.ClientSnapshot, error) {
	v, err := r.profiles().FindClientByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.ClientSnapshot{ID: v.ID, UserID: v.UserID, Name: v.Name}, nil
}

func (r *commandReads) CompanyByID(ctx context.Context, id uuid.UUID) (*shared.CompanySnapshot, error) {
	v, err := r.profiles().FindCompanyByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.CompanySnapshot{ID: v.ID, UserID: v.UserID, Name: v.Name}, nil
}

func (r *commandReads) CountOverlappingSlots(ctx context.Context, companyID uuid.UUID, tr timerange.TimeRange, excludeID uuid.UUID) (int64, error) {
	return r.slots().CountOverlapping(ctx, companyID, tr.Start(), tr.End(), excludeID)
}

func (r *commandReads) CountBookingsForSlot(ctx context.Context, slotID uuid.UUID) (int64, error) {
	return r.slots().CountBookings(ctx, slotID)
}

func toSlotSnapshot(v *queries.SlotView) *shared.SlotSnapshot {
	return &shared.SlotSnapshot{
		ID:          v.ID,
		CompanyID:   v.CompanyID,
		StartTime:   v.StartTime,
		EndTime:     v.EndTime,
		IsAvailable: v.IsAvailable,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}
