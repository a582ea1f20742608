package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rentadmin/internal/services"
)

// AuditHandler handles audit log requests
type AuditHandler struct {
	auditService services.AuditServicer
}

// NewAuditHandler creates a new AuditHandler
func NewAuditHandler(auditService services.AuditServicer) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// GetAuditLogs handles the retrieval of recent audit entries
// @Summary     List audit logs
// @Description Get the most recent audit entries with the acting admin's username, newest first
// @Tags        audit-logs
// @Accept      json
// @Produce     json
// @Param       limit query int false "Maximum number of entries (default 100)"
// @Success     200 {array} services.AuditLogEntry "Recent audit entries"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /audit-logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	logs, err := h.auditService.ListRecent(limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}
