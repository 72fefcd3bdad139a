//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"slot-booking/internal/domain/servicetype"
	"slot-booking/internal/domain/user"
	"slot-booking/internal/handler/api"
	resdto "slot-booking/internal/handler/dto/response"
	"slot-booking/internal/pkg/errs"
	"slot-booking/internal/usecase/commands"
	"slot-booking/internal/usecase/queries"
	"slot-booking/tests/common/builder"
	"slot-booking/tests/common/httptest"
	"slot-booking/tests/common/testutil"
	commandsmock "slot-booking/tests/mock/commands"
	queriesmock "slot-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	mockUsers       *commandsmock.MockUserCommands
	mockUserQueries *queriesmock.MockUserQueries
	mockServices    *commandsmock.MockServiceTypeCommands
	mockServiceQ    *queriesmock.MockServiceTypeQueries
}

func (s *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUsers = commandsmock.NewMockUserCommands(s.mockCtrl)
	s.mockUserQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.mockServices = commandsmock.NewMockServiceTypeCommands(s.mockCtrl)
	s.mockServiceQ = queriesmock.NewMockServiceTypeQueries(s.mockCtrl)

	users := api.NewUserHandler(s.mockUsers, s.mockUserQueries)
	services := api.NewServiceTypeHandler(s.mockServices, s.mockServiceQ)

	s.router.POST("/api/users", users.Register)
	s.router.GET("/api/users/:id", users.Get)
	s.router.POST("/api/service-types", services.Create)
	s.router.GET("/api/service-types/:id", services.Get)
}

func (s *UserHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func profileViewOf(u *user.User) *queries.UserProfileView {
	v := &queries.UserProfileView{
		ID:          u.ID(),
		Username:    u.Username().Value(),
		Email:       u.Email().Value(),
		FirstName:   u.FirstName(),
		LastName:    u.LastName(),
		ProfileKind: u.ProfileKind().String(),
		CreatedAt:   u.CreatedAt(),
	}
	if c, ok := u.Company(); ok {
		v.Company = &queries.CompanyView{ID: c.ID, UserID: u.ID(), Name: c.Name, Description: c.Description, CreatedAt: u.CreatedAt()}
	}
	if c, ok := u.Client(); ok {
		v.Client = &queries.ClientView{ID: c.ID, UserID: u.ID(), Name: c.Name, Phone: c.Phone, CreatedAt: u.CreatedAt()}
	}
	return v
}

// ================================================================================
// TestRegister
// ================================================================================

func (s *UserHandlerTestSuite) TestRegister() {
	url := "/api/users"
	reqBody := map[string]any{
		"username":            "acme",
		"email":               "owner@acme.example.com",
		"password":            "s3cret-pass",
		"first_name":          "Ada",
		"last_name":           "Owner",
		"profile_kind":        "company",
		"company_name":        "Acme Dental",
		"company_description": "Family dentistry",
	}

	s.Run("success: company registration returns the profile", func() {
		registered, err := builder.NewUserBuilder().BuildDomain()
		s.Require().NoError(err)
		s.mockUsers.EXPECT().
			RegisterUser(gomock.Any(), commands.RegisterUserRequest{
				Username:           "acme",
				Email:              "owner@acme.example.com",
				Password:           "s3cret-pass",
				FirstName:          "Ada",
				LastName:           "Owner",
				ProfileKind:        "company",
				CompanyName:        "Acme Dental",
				CompanyDescription: "Family dentistry",
			}).
			Return(registered, nil).Times(1)
		s.mockUserQueries.EXPECT().GetProfile(gomock.Any(), registered.ID()).Return(profileViewOf(registered), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("company", body.ProfileKind)
		s.Require().NotNil(body.Profile)
		s.Equal("Acme Dental", body.Profile.Name)
		s.Require().NotNil(body.Profile.Description)
		s.Nil(body.Profile.Phone)
		s.NotContains(rec.Body.String(), "password")
	})

	s.Run("success: client registration exposes the phone", func() {
		registered, err := builder.NewUserBuilder().AsClient("Jane Roe", "+15550100").BuildDomain()
		s.Require().NoError(err)
		s.mockUsers.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(registered, nil).Times(1)
		s.mockUserQueries.EXPECT().GetProfile(gomock.Any(), registered.ID()).Return(profileViewOf(registered), nil).Times(1)

		body := testutil.DtoMap(s.T(), reqBody,
			testutil.Field("profile_kind", "client"),
			testutil.Field("client_name", "Jane Roe"),
			testutil.Field("phone", "+15550100"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)

		var res resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal("client", res.ProfileKind)
		s.Require().NotNil(res.Profile)
		s.Require().NotNil(res.Profile.Phone)
		s.Equal("+15550100", *res.Profile.Phone)
	})

	s.Run("error: 400 on binding failures", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing username", mutate: testutil.Field("username", nil)},
			{name: "missing email", mutate: testutil.Field("email", nil)},
			{name: "malformed email", mutate: testutil.Field("email", "not-an-email")},
			{name: "short password", mutate: testutil.Field("password", "short")},
			{name: "unknown profile kind", mutate: testutil.Field("profile_kind", "admin")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
				httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, string(errs.KindValidation))
			})
		}
	})

	s.Run("error: 409 for a taken username or email", func() {
		s.mockUsers.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("duplicate key"), errs.ErrDuplicateUser)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorKind(s.T(), rec, http.StatusConflict, string(errs.KindDuplicateUser))
	})

	s.Run("error: 400 when the profile is incomplete", func() {
		s.mockUsers.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(user.ErrCompanyNameRequired, errs.ErrDomainValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, testutil.Field("company_name", nil)))
		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, string(errs.KindValidation))
		s.Contains(rec.Body.String(), user.ErrCompanyNameRequired.Error())
	})
}

func (s *UserHandlerTestSuite) TestGetUser() {
	s.Run("user without profile has a null profile", func() {
		registered, err := builder.NewUserBuilder().WithProfileKind("").BuildDomain()
		s.Require().NoError(err)
		s.mockUserQueries.EXPECT().GetProfile(gomock.Any(), registered.ID()).Return(profileViewOf(registered), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/users/"+registered.ID().String(), nil)

		var body resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("none", body.ProfileKind)
		s.Nil(body.Profile)
	})

	s.Run("error: 404 for unknown user", func() {
		id := uuid.New()
		s.mockUserQueries.EXPECT().GetProfile(gomock.Any(), id).
			Return(nil, errs.Mark(errors.New("user not found"), errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/users/"+id.String(), nil)
		httptest.AssertErrorKind(s.T(), rec, http.StatusNotFound, string(errs.KindNotFound))
	})
}

// ================================================================================
// TestServiceTypes
// ================================================================================

func (s *UserHandlerTestSuite) TestCreateServiceType() {
	url := "/api/service-types"
	companyID := uuid.New()
	reqBody := map[string]any{
		"company_id":       companyID.String(),
		"name":             "Cleaning",
		"description":      "Routine cleaning",
		"duration_minutes": 45,
		"price_cents":      8000,
	}

	s.Run("success: returns 201", func() {
		now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
		created, err := servicetype.NewServiceType(companyID, "Cleaning", "Routine cleaning", 45, 8000, now)
		s.Require().NoError(err)
		s.mockServices.EXPECT().
			CreateServiceType(gomock.Any(), commands.CreateServiceTypeRequest{
				CompanyID:       companyID,
				Name:            "Cleaning",
				Description:     "Routine cleaning",
				DurationMinutes: 45,
				PriceCents:      8000,
			}).
			Return(created, nil).Times(1)
		s.mockServiceQ.EXPECT().GetByID(gomock.Any(), created.ID()).Return(&queries.ServiceTypeView{
			ID:              created.ID(),
			CompanyID:       companyID,
			Name:            "Cleaning",
			Description:     "Routine cleaning",
			DurationMinutes: 45,
			PriceCents:      8000,
			CreatedAt:       now,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.ServiceTypeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(created.ID().String(), body.ID)
		s.Equal(int32(45), body.DurationMinutes)
		s.Equal(int64(8000), body.PriceCents)
	})

	s.Run("error: 400 on missing name", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, testutil.Field("name", nil)))
		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, string(errs.KindValidation))
	})

	s.Run("error: 400 for a negative duration", func() {
		s.mockServices.EXPECT().CreateServiceType(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(servicetype.ErrInvalidDuration, errs.ErrDomainValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, testutil.Field("duration_minutes", -5)))
		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, string(errs.KindValidation))
	})

	s.Run("error: 404 for unknown company", func() {
		s.mockServices.EXPECT().CreateServiceType(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("company not found"), errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorKind(s.T(), rec, http.StatusNotFound, string(errs.KindNotFound))
	})
}

func (s *UserHandlerTestSuite) TestGetServiceType() {
	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/service-types/123", nil)
		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, string(errs.KindValidation))
	})

	s.Run("error: 404 for unknown service type", func() {
		id := uuid.New()
		s.mockServiceQ.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, errs.Mark(errors.New("service type not found"), errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/service-types/"+id.String(), nil)
		httptest.AssertErrorKind(s.T(), rec, http.StatusNotFound, string(errs.KindNotFound))
	})
}

func (s *UserHandlerTestSuite) TestListServiceTypes() {
	companyID := uuid.New()
	url := "/api/service-types?company_id=" + companyID.String()

	s.Run("success: returns the company's service types", func() {
		now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
		s.mockServiceQ.EXPECT().ListByCompany(gomock.Any(), companyID).Return([]*queries.ServiceTypeView{
			{ID: uuid.New(), CompanyID: companyID, Name: "Cleaning", DurationMinutes: 45, PriceCents: 8000, CreatedAt: now},
			{ID: uuid.New(), CompanyID: companyID, Name: "Whitening", DurationMinutes: 60, PriceCents: 15000, CreatedAt: now},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body []resdto.ServiceTypeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal("Cleaning", body[0].Name)
		s.Equal(companyID.String(), body[1].CompanyID)
	})

	s.Run("success: empty array for a company without service types", func() {
		s.mockServiceQ.EXPECT().ListByCompany(gomock.Any(), companyID).Return([]*queries.ServiceTypeView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})

	s.Run("error: 400 without company_id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/service-types", nil)
		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, string(errs.KindValidation))
	})

	s.Run("error: 400 on malformed company_id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/service-types?company_id=abc", nil)
		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, string(errs.KindValidation))
	})
}
