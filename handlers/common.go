package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sproutly/services/fault"
	"sproutly/utils"
)

// respondServiceError maps the service error taxonomy onto HTTP statuses.
// Untyped errors are treated as transport failures so an unexpected bug never
// reads as a client mistake.
func respondServiceError(c *gin.Context, err error) {
	switch fault.KindOf(err) {
	case fault.KindValidation:
		utils.JSONError(c, http.StatusBadRequest, "validation failed", err.Error())
	case fault.KindNotFound:
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
	case fault.KindConflict:
		utils.JSONError(c, http.StatusConflict, "conflict", err.Error())
	default:
		utils.JSONError(c, http.StatusBadGateway, "upstream failure", err.Error())
	}
}

// paging reads pageIndex/pageSize query parameters, zero-based.
func paging(c *gin.Context) (pageIndex, pageSize int) {
	pageIndex, _ = strconv.Atoi(c.DefaultQuery("pageIndex", "0"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	return pageIndex, pageSize
}
