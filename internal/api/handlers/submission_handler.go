package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linskybing/report-hub/internal/application"
	"github.com/linskybing/report-hub/internal/domain/submission"
	"github.com/linskybing/report-hub/pkg/response"
	"github.com/linskybing/report-hub/pkg/utils"
)

type SubmissionHandler struct {
	svc   *application.SubmissionService
	stats *application.StatisticsService
}

func NewSubmissionHandler(svc *application.SubmissionService, stats *application.StatisticsService) *SubmissionHandler {
	return &SubmissionHandler{svc: svc, stats: stats}
}

func (h *SubmissionHandler) Create(c *gin.Context) {
	var input submission.CreateSubmissionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}
	sub, err := h.svc.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sub)
}

// List returns every report, optionally filtered by ?status=.
func (h *SubmissionHandler) List(c *gin.Context) {
	var status *submission.Status
	if raw := c.Query("status"); raw != "" {
		st, ok := submission.ParseStatus(raw)
		if !ok {
			badRequest(c, "invalid status")
			return
		}
		status = &st
	}
	page, pageSize, err := utils.ParsePagination(c)
	if err != nil {
		badRequest(c, "invalid pagination parameters")
		return
	}
	res, err := h.svc.List(c.Request.Context(), status, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *SubmissionHandler) ListByStatus(c *gin.Context) {
	status, ok := submission.ParseStatus(c.Param("status"))
	if !ok {
		badRequest(c, "invalid status")
		return
	}
	page, pageSize, err := utils.ParsePagination(c)
	if err != nil {
		badRequest(c, "invalid pagination parameters")
		return
	}
	res, err := h.svc.ListByStatus(c.Request.Context(), status, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *SubmissionHandler) ListByProject(c *gin.Context) {
	projectID, err := utils.ParseUUIDParam(c, "projectId")
	if err != nil {
		badRequest(c, "invalid project id")
		return
	}
	page, pageSize, err := utils.ParsePagination(c)
	if err != nil {
		badRequest(c, "invalid pagination parameters")
		return
	}
	res, err := h.svc.ListByProject(c.Request.Context(), projectID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *SubmissionHandler) ListByProjectAndStatus(c *gin.Context) {
	projectID, err := utils.ParseUUIDParam(c, "projectId")
	if err != nil {
		badRequest(c, "invalid project id")
		return
	}
	status, ok := submission.ParseStatus(c.Param("status"))
	if !ok {
		badRequest(c, "invalid status")
		return
	}
	items, err := h.svc.ListByProjectAndStatus(c.Request.Context(), projectID, status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *SubmissionHandler) Get(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid id")
		return
	}
	sub, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (h *SubmissionHandler) Update(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid id")
		return
	}
	var input submission.UpdateSubmissionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}
	sub, err := h.svc.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (h *SubmissionHandler) Submit(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid id")
		return
	}
	sub, err := h.svc.SubmitForApproval(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (h *SubmissionHandler) Approve(c *gin.Context) {
	h.decide(c, h.svc.Approve)
}

func (h *SubmissionHandler) Reject(c *gin.Context) {
	h.decide(c, h.svc.Reject)
}

// decide runs approve or reject. The body is optional.
func (h *SubmissionHandler) decide(c *gin.Context, fn func(context.Context, uuid.UUID, *string) (*submission.ReportSubmission, error)) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid id")
		return
	}
	var input submission.DecisionDTO
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			badRequest(c, err.Error())
			return
		}
	}
	sub, err := fn(c.Request.Context(), id, input.Comments)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (h *SubmissionHandler) Delete(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid id")
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "report deleted"})
}

// History lists the recorded changes of one report, newest first.
func (h *SubmissionHandler) History(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid id")
		return
	}
	logs, err := h.svc.History(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

// Statistics accepts an optional project_id filter.
func (h *SubmissionHandler) Statistics(c *gin.Context) {
	projectID, err := utils.ParseQueryUUIDParam(c, "project_id")
	if err != nil {
		badRequest(c, "invalid project_id")
		return
	}
	stats, err := h.stats.GetStatistics(c.Request.Context(), projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
