package application

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/report-hub/internal/domain/form"
	"github.com/linskybing/report-hub/internal/repository"
	"github.com/linskybing/report-hub/internal/storage"
	"github.com/linskybing/report-hub/pkg/response"
)

// ImageUpload is one file destined for an image field of a report.
type ImageUpload struct {
	SubmissionID uuid.UUID
	SectionID    string
	FieldID      string
	Filename     string
	ContentType  string
	Size         int64
	Body         io.Reader
}

type ImageService struct {
	Repos     *repository.Repos
	Store     storage.ObjectStore
	URLExpiry time.Duration
}

func NewImageService(repos *repository.Repos, store storage.ObjectStore, urlExpiry time.Duration) *ImageService {
	return &ImageService{Repos: repos, Store: store, URLExpiry: urlExpiry}
}

// Upload stores the file and returns the object key to put in the field's
// value. The report itself is not modified.
func (s *ImageService) Upload(ctx context.Context, in ImageUpload) (response.UploadResponse, error) {
	if s.Store == nil {
		return response.UploadResponse{}, fmt.Errorf("%w: image storage is not configured", ErrUnavailable)
	}
	if !strings.HasPrefix(in.ContentType, "image/") {
		return response.UploadResponse{}, fmt.Errorf("%w: content type %q is not an image", ErrValidation, in.ContentType)
	}

	sub, err := s.Repos.Submission.GetByID(ctx, in.SubmissionID)
	if err != nil {
		return response.UploadResponse{}, translate(err, "report", in.SubmissionID)
	}
	if sub.Status.Terminal() {
		return response.UploadResponse{}, fmt.Errorf("%w: report is %s and can no longer be changed", ErrInvalidState, sub.Status)
	}

	t, err := s.Repos.Template.GetByID(ctx, sub.ReportTemplateID)
	if err != nil {
		return response.UploadResponse{}, translate(err, "report template", sub.ReportTemplateID)
	}
	sec, ok := t.Schema().Section(in.SectionID)
	if !ok {
		return response.UploadResponse{}, fmt.Errorf("%w: unknown section %q", ErrValidation, in.SectionID)
	}
	field, ok := sec.Field(in.FieldID)
	if !ok || field.Type() != form.FieldImage {
		return response.UploadResponse{}, fmt.Errorf("%w: %q is not an image field", ErrValidation, in.FieldID)
	}

	key := fmt.Sprintf("reports/%s/%s/%s/%s%s", sub.ID, in.SectionID, in.FieldID, uuid.New(), strings.ToLower(path.Ext(in.Filename)))
	if err := s.Store.Put(ctx, key, in.Body, in.Size, in.ContentType); err != nil {
		return response.UploadResponse{}, err
	}
	url, err := s.Store.PresignedURL(ctx, key, s.URLExpiry)
	if err != nil {
		return response.UploadResponse{}, err
	}
	return response.UploadResponse{ObjectKey: key, URL: url}, nil
}
