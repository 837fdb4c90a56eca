package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sproutly/services/availability"
)

// AvailabilityHandler serves booking availability queries.
type AvailabilityHandler struct {
	Query availability.Query
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(query availability.Query) *AvailabilityHandler {
	return &AvailabilityHandler{Query: query}
}

// AvailableForStudentHandler handles
// GET /BranchSlot/available-for-student/:studentId?pageIndex&pageSize&date.
func (h *AvailabilityHandler) AvailableForStudentHandler(c *gin.Context) {
	pageIndex, pageSize := paging(c)

	page, err := h.Query.AvailableSlotsForStudent(
		c.Request.Context(), c.Param("studentId"), c.Query("date"), pageIndex, pageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
