//go:build integration

package servicetype_test

import (
	"net/http"
	"testing"

	"slot-booking/internal/handler/dto/response"
	"slot-booking/tests/common/dbtest"
	"slot-booking/tests/common/httptest"
	"slot-booking/tests/integration"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ServiceTypeSuite struct {
	integration.SharedSuite
}

func TestServiceTypeSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ServiceTypeSuite))
}

func (s *ServiceTypeSuite) TestListByCompany() {
	s.Run("lists only the company's service types ordered by name", func() {
		t := s.T()
		companyID := dbtest.CreateCompany(t, s.DB, "Acme Dental")
		other := dbtest.CreateCompany(t, s.DB, "Other Dental")
		dbtest.CreateServiceType(t, s.DB, companyID, "Whitening", 60)
		dbtest.CreateServiceType(t, s.DB, companyID, "Cleaning", 30)
		dbtest.CreateServiceType(t, s.DB, other, "Checkup", 15)

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/service-types?company_id="+companyID.String(), nil)

		var body []response.ServiceTypeResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		require.Len(t, body, 2)
		assert.Equal(t, "Cleaning", body[0].Name)
		assert.Equal(t, "Whitening", body[1].Name)
	})

	s.Run("unknown company yields an empty list", func() {
		t := s.T()
		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/service-types?company_id="+uuid.NewString(), nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})
}
