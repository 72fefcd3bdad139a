//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"slot-booking/internal/domain/slot"
	"slot-booking/internal/domain/timerange"
	"slot-booking/internal/handler/api"
	resdto "slot-booking/internal/handler/dto/response"
	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/usecase/commands"
	"slot-booking/internal/usecase/queries"
	"slot-booking/tests/common/httptest"
	"slot-booking/tests/common/testutil"
	commandsmock "slot-booking/tests/mock/commands"
	queriesmock "slot-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var (
	slotStart = time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)
	slotEnd   = slotStart.Add(time.Hour)
	createdAt = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
)

type SlotHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSlotCommands
	mockQueries  *queriesmock.MockSlotQueries
	handler      *api.SlotHandler
}

func (s *SlotHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSlotCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSlotQueries(s.mockCtrl)
	s.handler = api.NewSlotHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/api/slots", s.handler.List)
	s.router.POST("/api/slots", s.handler.Create)
	s.router.POST("/api/slots/bulk", s.handler.BulkCreate)
	s.router.GET("/api/slots/:id", s.handler.Get)
	s.router.PUT("/api/slots/:id", s.handler.Update)
	s.router.DELETE("/api/slots/:id", s.handler.Delete)
}

func (s *SlotHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSlotHandlerSuite(t *testing.T) {
	suite.Run(t, new(SlotHandlerTestSuite))
}

func newSlot(companyID uuid.UUID, start, end time.Time) *slot.Slot {
	return slot.ReconstructSlot(uuid.New(), companyID, timerange.Reconstruct(start, end), true, createdAt, createdAt)
}

func newSlotView(companyID uuid.UUID) *queries.SlotView {
	return &queries.SlotView{
		ID:          uuid.New(),
		CompanyID:   companyID,
		StartTime:   slotStart,
		EndTime:     slotEnd,
		IsAvailable: true,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *SlotHandlerTestSuite) TestCreate() {
	url := "/api/slots"
	companyID := uuid.New()
	reqBody := map[string]any{
		"company_id": companyID.String(),
		"start_time": "2025-03-12T10:00:00Z",
		"end_time":   "2025-03-12T11:00:00Z",
	}

	s.Run("success: returns 201 with the created slot", func() {
		created := newSlot(companyID, slotStart, slotEnd)
		s.mockCommands.EXPECT().
			CreateSlot(gomock.Any(), commands.CreateSlotRequest{CompanyID: companyID, StartTime: slotStart, EndTime: slotEnd}).
			Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(created.ID().String(), body.ID)
		s.Equal(companyID.String(), body.CompanyID)
		s.True(body.IsAvailable)
		s.True(slotStart.Equal(body.StartTime))
	})

	s.Run("offset timestamps are normalized to UTC", func() {
		s.mockCommands.EXPECT().
			CreateSlot(gomock.Any(), commands.CreateSlotRequest{CompanyID: companyID, StartTime: slotStart, EndTime: slotEnd}).
			Return(newSlot(companyID, slotStart, slotEnd), nil).Times(1)

		body := testutil.DtoMap(s.T(), reqBody,
			testutil.Field("start_time", "2025-03-12T19:00:00+09:00"),
			testutil.Field("end_time", "2025-03-12T20:00:00+09:00"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
		s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
	})

	s.Run("error: 400 on binding failures", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing company_id", mutate: testutil.Field("company_id", nil)},
			{name: "missing start_time", mutate: testutil.Field("start_time", nil)},
			{name: "missing end_time", mutate: testutil.Field("end_time", nil)},
			{name: "malformed company_id", mutate: testutil.Field("company_id", "not-a-uuid")},
			{name: "malformed start_time", mutate: testutil.Field("start_time", "tomorrow")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
				httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, string(errs.KindValidation))
			})
		}
	})

	s.Run("error: 400 on malformed JSON", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, `{"company_id":`)
		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, string(errs.KindValidation))
	})

	s.Run("error: use case failures map to taxonomy statuses", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectKind errs.Kind
		}{
			{name: "end before start", err: errs.Mark(errors.New("end must be after start"), errs.ErrInvalidTimeRange), expectCode: http.StatusBadRequest, expectKind: errs.KindInvalidTimeRange},
			{name: "overlapping slot", err: errs.Mark(errors.New("overlap"), errs.ErrSlotOverlap), expectCode: http.StatusConflict, expectKind: errs.KindSlotOverlap},
			{name: "unknown company", err: errs.Mark(errors.New("company not found"), errs.ErrNotFound), expectCode: http.StatusNotFound, expectKind: errs.KindNotFound},
			{name: "unclassified failure", err: errors.New("connection refused"), expectCode: http.StatusInternalServerError, expectKind: errs.KindInternal},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateSlot(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorKind(s.T(), rec, tc.expectCode, string(tc.expectKind))
			})
		}
	})

	s.Run("invalid time range exposes the reason", func() {
		s.mockCommands.EXPECT().CreateSlot(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("end must be after start"), errs.ErrInvalidTimeRange)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Contains(rec.Body.String(), "end must be after start")
	})

	s.Run("internal errors do not leak their message", func() {
		s.mockCommands.EXPECT().CreateSlot(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("password authentication failed for user postgres")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.NotContains(rec.Body.String(), "postgres")
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *SlotHandlerTestSuite) TestUpdate() {
	slotID := uuid.New()
	url := "/api/slots/" + slotID.String()
	reqBody := map[string]any{
		"start_time": "2025-03-12T14:00:00Z",
		"end_time":   "2025-03-12T15:00:00Z",
	}

	s.Run("success: returns 200 with the moved slot", func() {
		start := time.Date(2025, 3, 12, 14, 0, 0, 0, time.UTC)
		moved := newSlot(uuid.New(), start, start.Add(time.Hour))
		s.mockCommands.EXPECT().
			UpdateSlot(gomock.Any(), slotID, commands.UpdateSlotRequest{StartTime: start, EndTime: start.Add(time.Hour)}).
			Return(moved, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody)

		var body resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(start.Equal(body.StartTime))
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/slots/abc", reqBody)
		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, string(errs.KindValidation))
	})

	s.Run("error: 409 with Retry-After on lock contention", func() {
		s.mockCommands.EXPECT().UpdateSlot(gomock.Any(), slotID, gomock.Any()).
			Return(nil, errs.Mark(errors.New("lock timeout"), errs.ErrConcurrencyConflict)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody)
		httptest.AssertErrorKind(s.T(), rec, http.StatusConflict, string(errs.KindConcurrencyConflict))
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Retry-After": "1"})
	})

	s.Run("error: 404 for unknown slot", func() {
		s.mockCommands.EXPECT().UpdateSlot(gomock.Any(), slotID, gomock.Any()).
			Return(nil, errs.Mark(errors.New("slot not found"), errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody)
		httptest.AssertErrorKind(s.T(), rec, http.StatusNotFound, string(errs.KindNotFound))
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *SlotHandlerTestSuite) TestDelete() {
	slotID := uuid.New()
	url := "/api/slots/" + slotID.String()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().DeleteSlot(gomock.Any(), slotID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: 409 when bookings reference the slot", func() {
		s.mockCommands.EXPECT().DeleteSlot(gomock.Any(), slotID).
			Return(errs.Mark(errors.New("slot has bookings"), errs.ErrSlotHasBookings)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		httptest.AssertErrorKind(s.T(), rec, http.StatusConflict, string(errs.KindSlotHasBookings))
		s.Empty(rec.Header().Get("Retry-After"))
	})
}

// ================================================================================
// TestGetAndList
// ================================================================================

func (s *SlotHandlerTestSuite) TestGet() {
	s.Run("success: returns 200", func() {
		view := newSlotView(uuid.New())
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/slots/"+view.ID.String(), nil)

		var body resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID.String(), body.ID)
	})

	s.Run("error: 404 for unknown slot", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, errs.Mark(errors.New("slot not found"), errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/slots/"+id.String(), nil)
		httptest.AssertErrorKind(s.T(), rec, http.StatusNotFound, string(errs.KindNotFound))
	})
}

func (s *SlotHandlerTestSuite) TestList() {
	s.Run("defaults to available slots on the first page", func() {
		view := newSlotView(uuid.New())
		s.mockQueries.EXPECT().
			List(gomock.Any(), queries.SlotFilters{OnlyAvailable: true}, queries.Page{Number: 1, Size: queries.DefaultPageSize}).
			Return(&queries.PageResult[*queries.SlotView]{Count: 1, Page: 1, PageSize: queries.DefaultPageSize, Results: []*queries.SlotView{view}}, nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/slots", nil)

		var body resdto.PageResponse[resdto.SlotResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(1), body.Count)
		s.Require().Len(body.Results, 1)
		s.Equal(view.ID.String(), body.Results[0].ID)
	})

	s.Run("passes filters through", func() {
		companyID := uuid.New()
		day := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC)
		s.mockQueries.EXPECT().
			List(gomock.Any(), queries.SlotFilters{CompanyID: &companyID, StartDate: &day, EndDate: &end, OnlyAvailable: false}, queries.Page{Number: 2, Size: 5}).
			Return(&queries.PageResult[*queries.SlotView]{Page: 2, PageSize: 5, Results: []*queries.SlotView{}}, nil).
			Times(1)

		url := "/api/slots?company_id=" + companyID.String() + "&start_date=2025-03-12&end_date=2025-03-13T00:00:00Z&only_available=false&page=2&page_size=5"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body resdto.PageResponse[resdto.SlotResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Results)
		s.Contains(rec.Body.String(), `"results":[]`)
	})

	s.Run("error: 400 on malformed filters", func() {
		for _, q := range []string{"company_id=nope", "start_date=12/03/2025", "only_available=maybe", "page=9223372036854775807"} {
			s.Run(q, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/slots?"+q, nil)
				httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, string(errs.KindValidation))
			})
		}
	})
}

// ================================================================================
// TestBulkCreate
// ================================================================================

func (s *SlotHandlerTestSuite) TestBulkCreate() {
	url := "/api/slots/bulk"
	companyID := uuid.New()
	reqBody := map[string]any{
		"company_id":       companyID.String(),
		"start_date":       "2025-03-10",
		"end_date":         "2025-03-14",
		"duration_minutes": 60,
		"start_hour":       9,
		"end_hour":         17,
		"weekdays":         []int{0, 2, 4},
	}

	s.Run("success: returns 201 with created and skipped counts", func() {
		first := newSlot(companyID, slotStart, slotEnd)
		second := newSlot(companyID, slotEnd, slotEnd.Add(time.Hour))
		s.mockCommands.EXPECT().
			BulkGenerateSlots(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.BulkTemplateRequest) (*commands.BulkResult, error) {
				s.Equal(companyID, req.CompanyID)
				s.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), req.StartDate)
				s.Equal(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), req.EndDate)
				s.Require().NotNil(req.DurationMinutes)
				s.Equal(60, *req.DurationMinutes)
				s.Equal([]int{0, 2, 4}, req.Weekdays)
				return &commands.BulkResult{Created: []*slot.Slot{first, second}, Skipped: 3}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.BulkSlotsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(2, body.CreatedCount)
		s.Equal(3, body.SkippedCount)
		s.Len(body.Slots, 2)
	})

	s.Run("omitted template fields stay unset", func() {
		s.mockCommands.EXPECT().
			BulkGenerateSlots(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.BulkTemplateRequest) (*commands.BulkResult, error) {
				s.Nil(req.DurationMinutes)
				s.Nil(req.StartHour)
				s.Nil(req.EndHour)
				s.Empty(req.Weekdays)
				return &commands.BulkResult{}, nil
			}).Times(1)

		body := testutil.DtoMap(s.T(), reqBody,
			testutil.Field("duration_minutes", nil),
			testutil.Field("start_hour", nil),
			testutil.Field("end_hour", nil),
			testutil.Field("weekdays", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)

		var res resdto.BulkSlotsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(0, res.CreatedCount)
		s.NotNil(res.Slots)
	})

	s.Run("error: 400 on malformed dates", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("start_date", "2025-03-10T00:00:00Z"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, string(errs.KindValidation))
	})

	s.Run("error: 400 for an invalid template", func() {
		s.mockCommands.EXPECT().BulkGenerateSlots(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("start hour must be before end hour"), errs.ErrInvalidTemplate)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, string(errs.KindInvalidTemplate))
		s.Contains(rec.Body.String(), "start hour must be before end hour")
	})
}
