package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sproutly/services/assignment"
	"sproutly/utils"
)

// AssignmentHandler serves room and staff assignment endpoints.
type AssignmentHandler struct {
	Service assignment.Service
}

// NewAssignmentHandler constructs an AssignmentHandler.
func NewAssignmentHandler(service assignment.Service) *AssignmentHandler {
	return &AssignmentHandler{Service: service}
}

// AssignRoomsHandler handles POST /BranchSlot/assign-rooms.
func (h *AssignmentHandler) AssignRoomsHandler(c *gin.Context) {
	var input struct {
		BranchSlotID string   `json:"branchSlotId"`
		RoomIDs      []string `json:"roomIds"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Service.AssignRooms(c.Request.Context(), input.BranchSlotID, input.RoomIDs); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"assigned": len(input.RoomIDs)})
}

// UnassignRoomHandler handles DELETE /BranchSlot/:id/rooms/:roomId. Staff
// assigned to the removed room are removed with it.
func (h *AssignmentHandler) UnassignRoomHandler(c *gin.Context) {
	if err := h.Service.UnassignRoom(c.Request.Context(), c.Param("id"), c.Param("roomId")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": true})
}

// AssignStaffHandler handles POST /BranchSlot/assign-staff. The userId field
// carries the staff directory id; name carries an optional role label.
func (h *AssignmentHandler) AssignStaffHandler(c *gin.Context) {
	var input struct {
		BranchSlotID string  `json:"branchSlotId"`
		UserID       string  `json:"userId"`
		RoomID       *string `json:"roomId,omitempty"`
		Name         string  `json:"name,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Service.AssignStaff(c.Request.Context(), input.BranchSlotID, input.UserID, input.RoomID, input.Name); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"assigned": true})
}

// UnassignStaffHandler handles DELETE /BranchSlot/:id/staff/:staffId.
func (h *AssignmentHandler) UnassignStaffHandler(c *gin.Context) {
	if err := h.Service.UnassignStaff(c.Request.Context(), c.Param("id"), c.Param("staffId")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": true})
}

// ListSlotRoomsHandler handles GET /BranchSlot/:id/rooms.
func (h *AssignmentHandler) ListSlotRoomsHandler(c *gin.Context) {
	pageIndex, pageSize := paging(c)
	page, err := h.Service.ListRoomsPaged(c.Request.Context(), c.Param("id"), pageIndex, pageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// ListSlotStaffHandler handles GET /BranchSlot/:id/staff.
func (h *AssignmentHandler) ListSlotStaffHandler(c *gin.Context) {
	pageIndex, pageSize := paging(c)
	page, err := h.Service.ListStaffPaged(c.Request.Context(), c.Param("id"), pageIndex, pageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetAssignmentsHandler handles GET /BranchSlot/:id/assignments: the joined
// per-room view plus picker candidates for the next assignment.
func (h *AssignmentHandler) GetAssignmentsHandler(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	assignments, err := h.Service.ListAssignments(ctx, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	candidates, err := h.Service.StaffCandidates(ctx, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"assignments":     assignments,
		"selectableRooms": assignment.SelectableRooms(assignments),
		"selectableStaff": candidates,
	})
}
