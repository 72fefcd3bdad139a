//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"slot-booking/internal/infra"
	sqlc "slot-booking/internal/infra/sqlc/generated"
	"slot-booking/internal/pkg/clock"
	"slot-booking/internal/pkg/metrics"
	"slot-booking/internal/usecase/shared"
	sharedmock "slot-booking/tests/mock/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

type commandMocks struct {
	ctrl         *gomock.Controller
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	reads        *sharedmock.MockCommandReads
	slots        *sharedmock.MockSlotRepository
	bookings     *sharedmock.MockBookingRepository
	serviceTypes *sharedmock.MockServiceTypeRepository
	users        *sharedmock.MockUserRepository
	clock        *clock.FixedClock
	metrics      *metrics.Metrics
}

// newCommandMocks wires a unit of work that runs callbacks inline against
// the mocked repositories.
func newCommandMocks(t *testing.T) *commandMocks {
	ctrl := gomock.NewController(t)
	m := &commandMocks{
		ctrl:         ctrl,
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		reads:        sharedmock.NewMockCommandReads(ctrl),
		slots:        sharedmock.NewMockSlotRepository(ctrl),
		bookings:     sharedmock.NewMockBookingRepository(ctrl),
		serviceTypes: sharedmock.NewMockServiceTypeRepository(ctrl),
		users:        sharedmock.NewMockUserRepository(ctrl),
		clock:        clock.NewFixedClock(fixedNow),
		metrics:      metrics.New(prometheus.NewRegistry()),
	}

	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	m.uow.EXPECT().WithDB(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, sqlc.DBTX) error) error {
			return fn(ctx, nil)
		}).AnyTimes()
	m.uow.EXPECT().CommandReads().Return(m.reads).AnyTimes()

	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Slots().Return(m.slots).AnyTimes()
	m.tx.EXPECT().Bookings().Return(m.bookings).AnyTimes()
	m.tx.EXPECT().ServiceTypes().Return(m.serviceTypes).AnyTimes()
	m.tx.EXPECT().Users().Return(m.users).AnyTimes()
	m.tx.EXPECT().DB().Return(nil).AnyTimes()

	return m
}

func repoNotFound(msg string) error {
	return infra.WrapRepoErr(msg, pgx.ErrNoRows)
}

func pgErr(code, constraint string) error {
	return infra.WrapRepoErr("statement failed", &pgconn.PgError{Code: code, ConstraintName: constraint})
}
