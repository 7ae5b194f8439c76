package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mapsplanner/internal/models/request_models"
	"mapsplanner/internal/services"
	"mapsplanner/pkg/middleware"
	"mapsplanner/pkg/utils"
)

type AuditController struct {
	auditService services.AuditServiceInterface
}

func NewAuditController(auditService services.AuditServiceInterface) *AuditController {
	return &AuditController{
		auditService: auditService,
	}
}

// ListAuditLogs godoc
// @Summary List audit log entries
// @Description Paginated entries scoped to the caller, newest first. Administrators may impersonate another user or "all"
// @Tags Audit
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param impersonate_user_id query string false "User ID or the literal all (administrators only)"
// @Param action query int false "Action filter (1 creation, 2 modification, 3 deletion, 4 external query)"
// @Param target_model query string false "Target kind: user, trip or marker"
// @Param target_id query string false "Target entity ID"
// @Param creation_date query string false "Date range start...end, RFC3339 or epoch seconds"
// @Success 200 {array} response_models.AuditLogResponse
// @Failure 400 {object} utils.APIResponse
// @Router /audit [get]
func (a *AuditController) ListAuditLogs(c *gin.Context) {
	page, ok := parsePage(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	var filter request_models.AuditListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	entries, err := a.auditService.List(c.Request.Context(), middleware.CurrentUser(c), impersonation(c), page, filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entries, "Audit logs fetched successfully")
}
