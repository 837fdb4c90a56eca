package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sproutly/models"
	"sproutly/services/assignment"
	slotSvc "sproutly/services/slot"
	"sproutly/utils"
)

// SlotHandler serves the BranchSlot CRUD surface.
type SlotHandler struct {
	Registry    slotSvc.Registry
	Assignments assignment.Service
}

// NewSlotHandler constructs a SlotHandler.
func NewSlotHandler(registry slotSvc.Registry, assignments assignment.Service) *SlotHandler {
	return &SlotHandler{Registry: registry, Assignments: assignments}
}

// CreateSlotHandler handles POST /BranchSlot.
func (h *SlotHandler) CreateSlotHandler(c *gin.Context) {
	var input slotSvc.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	slot, err := h.Registry.Create(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, slot)
}

// UpdateSlotHandler handles PUT /BranchSlot/:id.
func (h *SlotHandler) UpdateSlotHandler(c *gin.Context) {
	var input slotSvc.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	slot, err := h.Registry.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, slot)
}

// GetSlotHandler handles GET /BranchSlot/:id. The response includes the
// slot's room and staff assignments.
func (h *SlotHandler) GetSlotHandler(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	slot, err := h.Registry.GetByID(ctx, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	assignments, err := h.Assignments.ListAssignments(ctx, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.BranchSlotDetail{
		BranchSlot: *slot,
		Rooms:      assignments.Rooms,
		Staff:      assignments.Staff,
	})
}

// DeleteSlotHandler handles DELETE /BranchSlot/:id.
func (h *SlotHandler) DeleteSlotHandler(c *gin.Context) {
	if err := h.Registry.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListSlotsHandler handles GET /BranchSlot with paging and filters.
func (h *SlotHandler) ListSlotsHandler(c *gin.Context) {
	pageIndex, pageSize := paging(c)

	filter := models.SlotFilter{
		BranchID:   c.Query("branchId"),
		SlotTypeID: c.Query("slotTypeId"),
		Status:     models.SlotStatus(c.Query("status")),
		Date:       c.Query("date"),
	}
	if wd, ok := c.GetQuery("weekDate"); ok {
		weekDate, err := strconv.Atoi(wd)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "weekDate must be an integer")
			return
		}
		filter.WeekDate = &weekDate
	}

	page, err := h.Registry.ListPaged(c.Request.Context(), filter, pageIndex, pageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
