package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking_mock.go -package=commandsmock

import (
	"context"
	"log/slog"

	"slot-booking/internal/domain/booking"
	"slot-booking/internal/domain/timerange"
	"slot-booking/internal/pkg/clock"
	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/pkg/metrics"
	"slot-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	SlotID        uuid.UUID
	ServiceTypeID uuid.UUID
	ClientID      uuid.UUID
	Notes         *string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*booking.Booking, error)
	UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, status string) (*booking.Booking, error)
	DeleteBooking(ctx context.Context, bookingID uuid.UUID) error
}

type bookingUseCaseImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	metrics *metrics.Metrics
}

func NewBookingUseCase(uow shared.UnitOfWork, clk clock.Clock, m *metrics.Metrics) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, clock: clk, metrics: m}
}

// CreateBooking locks the slot row before validating, so two concurrent
// reservations of one slot serialize and the loser sees it unavailable.
func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, req CreateBookingRequest) (created *booking.Booking, err error) {
	defer func() { uc.metrics.ObserveOperation("reserve", err) }()

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		slotSnap, derr := tx.Reads().SlotForUpdate(ctx, req.SlotID)
		if derr != nil {
			return mapRepoErr(derr, "slot not found")
		}
		svcSnap, derr := tx.Reads().ServiceTypeByID(ctx, req.ServiceTypeID)
		if derr != nil {
			return mapRepoErr(derr, "service type not found")
		}
		if _, derr = tx.Reads().ClientByID(ctx, req.ClientID); derr != nil {
			return mapRepoErr(derr, "client not found")
		}

		now := uc.clock.Now()
		b, derr := booking.Reserve(
			booking.SlotSpec{
				ID:          slotSnap.ID,
				CompanyID:   slotSnap.CompanyID,
				Range:       timerange.Reconstruct(slotSnap.StartTime, slotSnap.EndTime),
				IsAvailable: slotSnap.IsAvailable,
			},
			booking.ServiceTypeSpec{
				ID:        svcSnap.ID,
				CompanyID: svcSnap.CompanyID,
				Duration:  svcSnap.Duration(),
			},
			req.ClientID,
			req.Notes,
			now,
		)
		if derr != nil {
			return markDomainErr(derr)
		}

		if derr = tx.Bookings().Create(ctx, tx.DB(), b); derr != nil {
			return mapRepoErr(derr, "create booking")
		}
		if derr = tx.Slots().SetAvailability(ctx, tx.DB(), slotSnap.ID, false, now); derr != nil {
			return mapRepoErr(derr, "mark slot unavailable")
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Booking created",
		slog.String("booking_id", created.ID().String()),
		slog.String("slot_id", created.SlotID().String()),
		slog.String("client_id", created.ClientID().String()))
	return created, nil
}

func (uc *bookingUseCaseImpl) UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, status string) (updated *booking.Booking, err error) {
	defer func() { uc.metrics.ObserveOperation("change_status", err) }()

	to, err := booking.ParseStatus(status)
	if err != nil {
		return nil, markDomainErr(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().BookingForUpdate(ctx, bookingID)
		if derr != nil {
			return mapRepoErr(derr, "booking not found")
		}
		from, derr := booking.ParseStatus(snap.Status)
		if derr != nil {
			return errs.Wrapf(derr, "stored status %q", snap.Status)
		}

		b := booking.ReconstructBooking(snap.ID, snap.SlotID, snap.ServiceTypeID, snap.ClientID,
			from, snap.Notes, snap.CreatedAt, snap.UpdatedAt)

		now := uc.clock.Now()
		effect, derr := b.ChangeStatus(to, now)
		if derr != nil {
			return markDomainErr(derr)
		}
		if derr = tx.Bookings().UpdateStatus(ctx, tx.DB(), b); derr != nil {
			return mapRepoErr(derr, "update booking status")
		}

		switch effect {
		case booking.SlotRelease:
			derr = tx.Slots().SetAvailability(ctx, tx.DB(), b.SlotID(), true, now)
		case booking.SlotOccupy:
			derr = tx.Slots().SetAvailability(ctx, tx.DB(), b.SlotID(), false, now)
		case booking.SlotUnchanged:
		}
		if derr != nil {
			return mapRepoErr(derr, "update slot availability")
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteBooking always frees the slot, whatever the booking's status was.
func (uc *bookingUseCaseImpl) DeleteBooking(ctx context.Context, bookingID uuid.UUID) (err error) {
	defer func() { uc.metrics.ObserveOperation("delete_booking", err) }()

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().BookingForUpdate(ctx, bookingID)
		if derr != nil {
			return mapRepoErr(derr, "booking not found")
		}
		if derr = tx.Bookings().Delete(ctx, tx.DB(), snap.ID); derr != nil {
			return mapRepoErr(derr, "delete booking")
		}
		if derr = tx.Slots().SetAvailability(ctx, tx.DB(), snap.SlotID, true, uc.clock.Now()); derr != nil {
			return mapRepoErr(derr, "release slot")
		}
		return nil
	})
}
