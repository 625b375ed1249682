package reporttemplate

import (
	"github.com/google/uuid"
	"github.com/linskybing/report-hub/internal/domain/form"
)

type CreateTemplateDTO struct {
	Name                string        `json:"name" binding:"required,max=255"`
	Description         string        `json:"description"`
	ProjectTypeID       uuid.UUID     `json:"project_type_id" binding:"required"`
	NumberOfSubmissions *int          `json:"number_of_submissions,omitempty" binding:"omitempty,min=1"`
	Sections            form.Sections `json:"sections" binding:"required"`
}

// UpdateTemplateDTO carries only the fields to change. A number_of_submissions
// of 0 removes the cap.
type UpdateTemplateDTO struct {
	Name                *string        `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Description         *string        `json:"description,omitempty"`
	ProjectTypeID       *uuid.UUID     `json:"project_type_id,omitempty"`
	NumberOfSubmissions *int           `json:"number_of_submissions,omitempty" binding:"omitempty,min=0"`
	Sections            *form.Sections `json:"sections,omitempty"`
}

type ListTemplatesQuery struct {
	ProjectTypeID *uuid.UUID
	Page          int
	PageSize      int
}
