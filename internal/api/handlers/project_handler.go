package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/report-hub/internal/application"
	"github.com/linskybing/report-hub/pkg/utils"
)

type ProjectHandler struct {
	svc *application.ProjectService
}

func NewProjectHandler(svc *application.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// GetProjectByID returns the project a report would be filed against.
func (h *ProjectHandler) GetProjectByID(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid id")
		return
	}
	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
