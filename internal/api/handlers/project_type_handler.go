package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/report-hub/internal/application"
	"github.com/linskybing/report-hub/internal/domain/projecttype"
	"github.com/linskybing/report-hub/pkg/response"
	"github.com/linskybing/report-hub/pkg/utils"
)

type ProjectTypeHandler struct {
	svc *application.ProjectTypeService
}

func NewProjectTypeHandler(svc *application.ProjectTypeService) *ProjectTypeHandler {
	return &ProjectTypeHandler{svc: svc}
}

func (h *ProjectTypeHandler) Create(c *gin.Context) {
	var input projecttype.CreateProjectTypeDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}
	pt, err := h.svc.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pt)
}

func (h *ProjectTypeHandler) List(c *gin.Context) {
	page, pageSize, err := utils.ParsePagination(c)
	if err != nil {
		badRequest(c, "invalid pagination parameters")
		return
	}
	res, err := h.svc.List(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *ProjectTypeHandler) Get(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid id")
		return
	}
	pt, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pt)
}

func (h *ProjectTypeHandler) Update(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid id")
		return
	}
	var input projecttype.UpdateProjectTypeDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}
	pt, err := h.svc.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pt)
}

func (h *ProjectTypeHandler) Delete(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid id")
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "project type deleted"})
}
