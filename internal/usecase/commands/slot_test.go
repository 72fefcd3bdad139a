//go:build unit

package commands_test

import (
	"testing"
	"time"

	"slot-booking/internal/domain/slot"
	"slot-booking/internal/domain/timerange"
	"slot-booking/internal/infra"
	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/usecase/commands"
	"slot-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SlotCommandsTestSuite struct {
	suite.Suite
	m         *commandMocks
	uc        commands.SlotCommands
	companyID uuid.UUID
	start     time.Time
}

func (s *SlotCommandsTestSuite) SetupTest() {
	s.m = newCommandMocks(s.T())
	s.uc = commands.NewSlotUseCase(s.m.uow, s.m.slots, s.m.clock, s.m.metrics)
	s.companyID = uuid.New()
	s.start = time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC)
}

func TestSlotCommandsSuite(t *testing.T) {
	suite.Run(t, new(SlotCommandsTestSuite))
}

func (s *SlotCommandsTestSuite) createRequest() commands.CreateSlotRequest {
	return commands.CreateSlotRequest{CompanyID: s.companyID, StartTime: s.start, EndTime: s.start.Add(time.Hour)}
}

func (s *SlotCommandsTestSuite) existingSlot() *shared.SlotSnapshot {
	return &shared.SlotSnapshot{
		ID:          uuid.New(),
		CompanyID:   s.companyID,
		StartTime:   s.start,
		EndTime:     s.start.Add(time.Hour),
		IsAvailable: true,
		CreatedAt:   fixedNow.Add(-24 * time.Hour),
		UpdatedAt:   fixedNow.Add(-24 * time.Hour),
	}
}

// ================================================================================
// CreateSlot
// ================================================================================

func (s *SlotCommandsTestSuite) TestCreateSlot_Success() {
	s.m.reads.EXPECT().CompanyByID(gomock.Any(), s.companyID).Return(&shared.CompanySnapshot{ID: s.companyID}, nil)
	s.m.reads.EXPECT().CountOverlappingSlots(gomock.Any(), s.companyID, gomock.Any(), uuid.Nil).Return(int64(0), nil)
	s.m.slots.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	created, err := s.uc.CreateSlot(s.T().Context(), s.createRequest())

	s.Require().NoError(err)
	s.Equal(s.companyID, created.CompanyID())
	s.True(created.IsAvailable())
	s.Equal(s.start, created.Start())
	s.Equal(s.start.Add(time.Hour), created.End())
	s.Equal(fixedNow, created.CreatedAt())
}

func (s *SlotCommandsTestSuite) TestCreateSlot_InvalidRange() {
	for _, end := range []time.Time{s.start, s.start.Add(-time.Minute)} {
		req := commands.CreateSlotRequest{CompanyID: s.companyID, StartTime: s.start, EndTime: end}

		_, err := s.uc.CreateSlot(s.T().Context(), req)

		s.True(errs.Is(err, errs.ErrInvalidTimeRange), "got %v", err)
	}
}

func (s *SlotCommandsTestSuite) TestCreateSlot_Overlap() {
	s.m.reads.EXPECT().CompanyByID(gomock.Any(), s.companyID).Return(&shared.CompanySnapshot{ID: s.companyID}, nil)
	s.m.reads.EXPECT().CountOverlappingSlots(gomock.Any(), s.companyID, gomock.Any(), uuid.Nil).Return(int64(1), nil)

	_, err := s.uc.CreateSlot(s.T().Context(), s.createRequest())

	s.True(errs.Is(err, errs.ErrSlotOverlap))
}

func (s *SlotCommandsTestSuite) TestCreateSlot_ExclusionConstraintRace() {
	s.m.reads.EXPECT().CompanyByID(gomock.Any(), s.companyID).Return(&shared.CompanySnapshot{ID: s.companyID}, nil)
	s.m.reads.EXPECT().CountOverlappingSlots(gomock.Any(), s.companyID, gomock.Any(), uuid.Nil).Return(int64(0), nil)
	s.m.slots.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(pgErr(infra.PgErrCodeExclusionViolation, "slots_no_overlap"))

	_, err := s.uc.CreateSlot(s.T().Context(), s.createRequest())

	s.True(errs.Is(err, errs.ErrSlotOverlap))
}

func (s *SlotCommandsTestSuite) TestCreateSlot_UnknownCompany() {
	s.m.reads.EXPECT().CompanyByID(gomock.Any(), s.companyID).Return(nil, repoNotFound("company"))

	_, err := s.uc.CreateSlot(s.T().Context(), s.createRequest())

	s.True(errs.Is(err, errs.ErrNotFound))
}

// ================================================================================
// UpdateSlot
// ================================================================================

func (s *SlotCommandsTestSuite) TestUpdateSlot_ExcludesItselfFromOverlapCheck() {
	snap := s.existingSlot()
	newStart := s.start.Add(30 * time.Minute)
	s.m.reads.EXPECT().SlotForUpdate(gomock.Any(), snap.ID).Return(snap, nil)
	s.m.reads.EXPECT().CountOverlappingSlots(gomock.Any(), s.companyID, gomock.Any(), snap.ID).
		DoAndReturn(func(_ any, _ uuid.UUID, r timerange.TimeRange, _ uuid.UUID) (int64, error) {
			s.Equal(newStart, r.Start())
			return 0, nil
		})
	s.m.slots.EXPECT().UpdateRange(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, _ any, sl *slot.Slot) error {
			s.Equal(snap.ID, sl.ID())
			return nil
		})

	updated, err := s.uc.UpdateSlot(s.T().Context(), snap.ID, commands.UpdateSlotRequest{
		StartTime: newStart,
		EndTime:   newStart.Add(time.Hour),
	})

	s.Require().NoError(err)
	s.Equal(newStart, updated.Start())
	s.Equal(snap.CreatedAt, updated.CreatedAt())
	s.Equal(fixedNow, updated.UpdatedAt())
	s.True(updated.IsAvailable())
}

func (s *SlotCommandsTestSuite) TestUpdateSlot_Overlap() {
	snap := s.existingSlot()
	s.m.reads.EXPECT().SlotForUpdate(gomock.Any(), snap.ID).Return(snap, nil)
	s.m.reads.EXPECT().CountOverlappingSlots(gomock.Any(), s.companyID, gomock.Any(), snap.ID).Return(int64(2), nil)

	_, err := s.uc.UpdateSlot(s.T().Context(), snap.ID, commands.UpdateSlotRequest{StartTime: s.start, EndTime: s.start.Add(2 * time.Hour)})

	s.True(errs.Is(err, errs.ErrSlotOverlap))
}

func (s *SlotCommandsTestSuite) TestUpdateSlot_NotFound() {
	id := uuid.New()
	s.m.reads.EXPECT().SlotForUpdate(gomock.Any(), id).Return(nil, repoNotFound("slot"))

	_, err := s.uc.UpdateSlot(s.T().Context(), id, commands.UpdateSlotRequest{StartTime: s.start, EndTime: s.start.Add(time.Hour)})

	s.True(errs.Is(err, errs.ErrNotFound))
}

// ================================================================================
// DeleteSlot
// ================================================================================

func (s *SlotCommandsTestSuite) TestDeleteSlot_Success() {
	snap := s.existingSlot()
	s.m.reads.EXPECT().SlotForUpdate(gomock.Any(), snap.ID).Return(snap, nil)
	s.m.reads.EXPECT().CountBookingsForSlot(gomock.Any(), snap.ID).Return(int64(0), nil)
	s.m.slots.EXPECT().Delete(gomock.Any(), gomock.Any(), snap.ID).Return(nil)

	s.NoError(s.uc.DeleteSlot(s.T().Context(), snap.ID))
}

func (s *SlotCommandsTestSuite) TestDeleteSlot_WithBookings() {
	snap := s.existingSlot()
	s.m.reads.EXPECT().SlotForUpdate(gomock.Any(), snap.ID).Return(snap, nil)
	s.m.reads.EXPECT().CountBookingsForSlot(gomock.Any(), snap.ID).Return(int64(1), nil)

	err := s.uc.DeleteSlot(s.T().Context(), snap.ID)

	s.True(errs.Is(err, errs.ErrSlotHasBookings))
}

func (s *SlotCommandsTestSuite) TestDeleteSlot_ForeignKeyRace() {
	snap := s.existingSlot()
	s.m.reads.EXPECT().SlotForUpdate(gomock.Any(), snap.ID).Return(snap, nil)
	s.m.reads.EXPECT().CountBookingsForSlot(gomock.Any(), snap.ID).Return(int64(0), nil)
	s.m.slots.EXPECT().Delete(gomock.Any(), gomock.Any(), snap.ID).
		Return(pgErr(infra.PgErrCodeForeignKeyViolation, "bookings_slot_id_fkey"))

	err := s.uc.DeleteSlot(s.T().Context(), snap.ID)

	s.True(errs.Is(err, errs.ErrSlotHasBookings))
}

func (s *SlotCommandsTestSuite) TestDeleteSlot_NotFound() {
	id := uuid.New()
	s.m.reads.EXPECT().SlotForUpdate(gomock.Any(), id).Return(nil, repoNotFound("slot"))

	err := s.uc.DeleteSlot(s.T().Context(), id)

	s.True(errs.Is(err, errs.ErrNotFound))
}
