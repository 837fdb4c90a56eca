package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sproutly/models"
	"sproutly/services/wizard"
	"sproutly/utils"
)

// WizardHandler serves the three-stage slot creation/edit flow.
type WizardHandler struct {
	Orchestrator wizard.Orchestrator
}

// NewWizardHandler constructs a WizardHandler.
func NewWizardHandler(orchestrator wizard.Orchestrator) *WizardHandler {
	return &WizardHandler{Orchestrator: orchestrator}
}

// StartFlowHandler handles POST /BranchSlot/flows.
func (h *WizardHandler) StartFlowHandler(c *gin.Context) {
	var input struct {
		BranchID string `json:"branchId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	state, err := h.Orchestrator.StartFlow(c.Request.Context(), input.BranchID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// StartEditFlowHandler handles POST /BranchSlot/flows/edit/:slotId.
func (h *WizardHandler) StartEditFlowHandler(c *gin.Context) {
	state, err := h.Orchestrator.StartEditFlow(c.Request.Context(), c.Param("slotId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// GetFlowHandler handles GET /BranchSlot/flows/:flowId.
func (h *WizardHandler) GetFlowHandler(c *gin.Context) {
	state, err := h.Orchestrator.GetFlow(c.Request.Context(), c.Param("flowId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// SubmitBasicInfoHandler handles PUT /BranchSlot/flows/:flowId/basic-info.
func (h *WizardHandler) SubmitBasicInfoHandler(c *gin.Context) {
	var input models.BasicInfoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	state, err := h.Orchestrator.SubmitBasicInfo(c.Request.Context(), c.Param("flowId"), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// SubmitRoomsHandler handles PUT /BranchSlot/flows/:flowId/rooms.
func (h *WizardHandler) SubmitRoomsHandler(c *gin.Context) {
	var input struct {
		RoomIDs []string `json:"roomIds"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	state, err := h.Orchestrator.SubmitRooms(c.Request.Context(), c.Param("flowId"), input.RoomIDs)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// SubmitStaffHandler handles PUT /BranchSlot/flows/:flowId/staff.
func (h *WizardHandler) SubmitStaffHandler(c *gin.Context) {
	var input models.StaffStageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	state, err := h.Orchestrator.SubmitStaff(c.Request.Context(), c.Param("flowId"), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// AbandonFlowHandler handles DELETE /BranchSlot/flows/:flowId. Committed
// stages are not reverted.
func (h *WizardHandler) AbandonFlowHandler(c *gin.Context) {
	if err := h.Orchestrator.Abandon(c.Request.Context(), c.Param("flowId")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"abandoned": true})
}
