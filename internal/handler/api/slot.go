package api

import (
	"net/http"

	reqdto "slot-booking/internal/handler/dto/request"
	resdto "slot-booking/internal/handler/dto/response"
	"slot-booking/internal/usecase/commands"
	"slot-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SlotHandler struct {
	cmds commands.SlotCommands
	q    queries.SlotQueries
}

func NewSlotHandler(cmds commands.SlotCommands, q queries.SlotQueries) *SlotHandler {
	return &SlotHandler{cmds: cmds, q: q}
}

// @Summary List slots
// @Description List slots with optional company and date filters. Only available slots are returned unless only_available=false.
// @Tags slots
// @Produce json
// @Param company_id query string false "Company ID"
// @Param start_date query string false "Slot start lower bound (RFC 3339 or YYYY-MM-DD)"
// @Param end_date query string false "Slot end upper bound (RFC 3339 or YYYY-MM-DD)"
// @Param only_available query bool false "Only available slots" default(true)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} resdto.PageResponse[resdto.SlotResponse]
// @Failure 400 {object} map[string]string
// @Router /api/slots [get]
func (h *SlotHandler) List(c *gin.Context) {
	var query reqdto.ListSlotsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err, "Invalid query")
		return
	}
	filters, page, err := query.ToFilters()
	if err != nil {
		badRequest(c, err, "Invalid query")
		return
	}

	result, err := h.q.List(c.Request.Context(), filters, page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPage(result, resdto.FromSlotView))
}

// @Summary Get slot
// @Tags slots
// @Produce json
// @Param id path string true "Slot ID"
// @Success 200 {object} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/slots/{id} [get]
func (h *SlotHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotView(view))
}

// @Summary Create slot
// @Description Create a bookable slot. Slots of one company may not overlap.
// @Tags slots
// @Accept json
// @Produce json
// @Param request body reqdto.CreateSlotRequest true "Create slot request"
// @Success 201 {object} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/slots [post]
func (h *SlotHandler) Create(c *gin.Context) {
	var req reqdto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request")
		return
	}
	created, err := h.cmds.CreateSlot(c.Request.Context(), req.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSlot(created))
}

// @Summary Update slot
// @Description Move a slot to a new time range
// @Tags slots
// @Accept json
// @Produce json
// @Param id path string true "Slot ID"
// @Param request body reqdto.UpdateSlotRequest true "Update slot request"
// @Success 200 {object} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/slots/{id} [put]
func (h *SlotHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req reqdto.UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request")
		return
	}
	updated, err := h.cmds.UpdateSlot(c.Request.Context(), id, req.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlot(updated))
}

// @Summary Delete slot
// @Description Delete a slot that no booking references
// @Tags slots
// @Param id path string true "Slot ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/slots/{id} [delete]
func (h *SlotHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.cmds.DeleteSlot(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Bulk generate slots
// @Description Generate back-to-back slots over a date range. Candidates overlapping existing slots are skipped.
// @Tags slots
// @Accept json
// @Produce json
// @Param request body reqdto.BulkSlotsRequest true "Bulk template"
// @Success 201 {object} resdto.BulkSlotsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/slots/bulk [post]
func (h *SlotHandler) BulkCreate(c *gin.Context) {
	var req reqdto.BulkSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request")
		return
	}
	tmpl, err := req.ToCommand()
	if err != nil {
		badRequest(c, err, "Invalid request")
		return
	}
	result, err := h.cmds.BulkGenerateSlots(c.Request.Context(), tmpl)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBulkResult(result))
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err, "Invalid id")
		return uuid.Nil, false
	}
	return id, true
}
