package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/report-hub/internal/application"
	"github.com/linskybing/report-hub/pkg/utils"
)

// maxImageSize bounds a single upload.
const maxImageSize = 10 << 20

type ImageHandler struct {
	service *application.ImageService
}

func NewImageHandler(service *application.ImageService) *ImageHandler {
	return &ImageHandler{service: service}
}

// Upload takes a multipart form with file, section_id and field_id and
// stores the file for that image field of the report.
func (h *ImageHandler) Upload(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid id")
		return
	}
	sectionID := c.PostForm("section_id")
	fieldID := c.PostForm("field_id")
	if sectionID == "" || fieldID == "" {
		badRequest(c, "section_id and field_id are required")
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		badRequest(c, "file is required")
		return
	}
	if fh.Size > maxImageSize {
		badRequest(c, "file is too large")
		return
	}
	f, err := fh.Open()
	if err != nil {
		badRequest(c, "cannot read file")
		return
	}
	defer f.Close()

	res, err := h.service.Upload(c.Request.Context(), application.ImageUpload{
		SubmissionID: id,
		SectionID:    sectionID,
		FieldID:      fieldID,
		Filename:     fh.Filename,
		ContentType:  fh.Header.Get("Content-Type"),
		Size:         fh.Size,
		Body:         f,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}
