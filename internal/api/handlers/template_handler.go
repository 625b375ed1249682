package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/report-hub/internal/application"
	"github.com/linskybing/report-hub/internal/domain/reporttemplate"
	"github.com/linskybing/report-hub/pkg/response"
	"github.com/linskybing/report-hub/pkg/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type TemplateHandler struct {
	svc    *application.TemplateService
	export *application.ExportService
}

func NewTemplateHandler(svc *application.TemplateService, export *application.ExportService) *TemplateHandler {
	return &TemplateHandler{svc: svc, export: export}
}

func (h *TemplateHandler) Create(c *gin.Context) {
	var input reporttemplate.CreateTemplateDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}
	t, err := h.svc.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// List accepts an optional project_type_id filter.
func (h *TemplateHandler) List(c *gin.Context) {
	projectTypeID, err := utils.ParseQueryUUIDParam(c, "project_type_id")
	if err != nil {
		badRequest(c, "invalid project_type_id")
		return
	}
	page, pageSize, err := utils.ParsePagination(c)
	if err != nil {
		badRequest(c, "invalid pagination parameters")
		return
	}
	res, err := h.svc.List(c.Request.Context(), projectTypeID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *TemplateHandler) Get(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid id")
		return
	}
	t, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TemplateHandler) Update(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid id")
		return
	}
	var input reporttemplate.UpdateTemplateDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}
	t, err := h.svc.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TemplateHandler) Delete(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid id")
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "report template deleted"})
}

// Export streams every report of the template as an XLSX workbook.
func (h *TemplateHandler) Export(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid id")
		return
	}
	buf, filename, err := h.export.ExportTemplate(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
