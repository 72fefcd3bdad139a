package api

import (
	"net/http"

	reqdto "slot-booking/internal/handler/dto/request"
	resdto "slot-booking/internal/handler/dto/response"
	"slot-booking/internal/usecase/commands"
	"slot-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ServiceTypeHandler struct {
	cmds commands.ServiceTypeCommands
	q    queries.ServiceTypeQueries
}

func NewServiceTypeHandler(cmds commands.ServiceTypeCommands, q queries.ServiceTypeQueries) *ServiceTypeHandler {
	return &ServiceTypeHandler{cmds: cmds, q: q}
}

// @Summary Create service type
// @Tags service-types
// @Accept json
// @Produce json
// @Param request body reqdto.CreateServiceTypeRequest true "Create service type request"
// @Success 201 {object} resdto.ServiceTypeResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/service-types [post]
func (h *ServiceTypeHandler) Create(c *gin.Context) {
	var req reqdto.CreateServiceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request")
		return
	}
	created, err := h.cmds.CreateServiceType(c.Request.Context(), req.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), created.ID())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromServiceTypeView(view))
}

// @Summary Get service type
// @Tags service-types
// @Produce json
// @Param id path string true "Service type ID"
// @Success 200 {object} resdto.ServiceTypeResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/service-types/{id} [get]
func (h *ServiceTypeHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceTypeView(view))
}

// @Summary List service types
// @Description List the service types a company offers, ordered by name.
// @Tags service-types
// @Produce json
// @Param company_id query string true "Company ID"
// @Success 200 {array} resdto.ServiceTypeResponse
// @Failure 400 {object} map[string]string
// @Router /api/service-types [get]
func (h *ServiceTypeHandler) List(c *gin.Context) {
	var query reqdto.ListServiceTypesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err, "Invalid query")
		return
	}
	companyID, err := query.CompanyUUID()
	if err != nil {
		badRequest(c, err, "Invalid query")
		return
	}
	views, err := h.q.ListByCompany(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceTypeViews(views))
}
