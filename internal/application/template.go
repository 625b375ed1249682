package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/linskybing/report-hub/internal/domain/audit"
	"github.com/linskybing/report-hub/internal/domain/form"
	"github.com/linskybing/report-hub/internal/domain/reporttemplate"
	"github.com/linskybing/report-hub/internal/repository"
	"github.com/linskybing/report-hub/pkg/response"
	"github.com/linskybing/report-hub/pkg/utils"
	"gorm.io/gorm"
)

type TemplateService struct {
	Repos *repository.Repos
	// StrictSchema rejects options on non-dropdown fields instead of
	// dropping them.
	StrictSchema bool
}

func NewTemplateService(repos *repository.Repos, strictSchema bool) *TemplateService {
	return &TemplateService{Repos: repos, StrictSchema: strictSchema}
}

func (s *TemplateService) Create(ctx context.Context, input reporttemplate.CreateTemplateDTO) (*reporttemplate.ReportTemplate, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, invalid(errors.New("name is required"))
	}
	sections, err := s.checkSchema(input.Sections)
	if err != nil {
		return nil, err
	}

	t := &reporttemplate.ReportTemplate{
		Name:                name,
		Description:         input.Description,
		ProjectTypeID:       input.ProjectTypeID,
		NumberOfSubmissions: input.NumberOfSubmissions,
	}
	t.SetSchema(sections)

	err = s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		if _, err := tx.ProjectType.GetForShare(ctx, input.ProjectTypeID); err != nil {
			return translate(err, "project type", input.ProjectTypeID)
		}
		if err := ensureTemplateNameFree(ctx, tx, name, input.ProjectTypeID, uuid.Nil); err != nil {
			return err
		}
		if err := tx.Template.Create(ctx, t); err != nil {
			return translate(err, "report template", name)
		}
		return utils.LogAudit(ctx, tx.Audit, audit.ActionCreate, audit.ResourceTemplate, t.ID.String(), nil, t,
			fmt.Sprintf("created report template %s", t.Name))
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TemplateService) Get(ctx context.Context, id uuid.UUID) (*reporttemplate.ReportTemplate, error) {
	t, err := s.Repos.Template.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "report template", id)
	}
	return t, nil
}

// List returns templates newest first, optionally limited to one project type.
func (s *TemplateService) List(ctx context.Context, projectTypeID *uuid.UUID, page, pageSize int) (response.Page[reporttemplate.ReportTemplate], error) {
	page, pageSize = normalizePage(page, pageSize)
	items, total, err := s.Repos.Template.List(ctx, reporttemplate.ListTemplatesQuery{
		ProjectTypeID: projectTypeID,
		Page:          page,
		PageSize:      pageSize,
	})
	if err != nil {
		return response.Page[reporttemplate.ReportTemplate]{}, err
	}
	return response.NewPage(items, total, page, pageSize), nil
}

// Update applies the supplied fields. Uniqueness of (name, project type) is
// checked against the values the template will have after the update.
func (s *TemplateService) Update(ctx context.Context, id uuid.UUID, input reporttemplate.UpdateTemplateDTO) (*reporttemplate.ReportTemplate, error) {
	var sections form.Sections
	if input.Sections != nil {
		var err error
		if sections, err = s.checkSchema(*input.Sections); err != nil {
			return nil, err
		}
	}

	var updated *reporttemplate.ReportTemplate
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		t, err := tx.Template.GetForUpdate(ctx, id)
		if err != nil {
			return translate(err, "report template", id)
		}
		before := *t

		projectTypeID := t.ProjectTypeID
		if input.ProjectTypeID != nil && *input.ProjectTypeID != t.ProjectTypeID {
			if _, err := tx.ProjectType.GetForShare(ctx, *input.ProjectTypeID); err != nil {
				return translate(err, "project type", *input.ProjectTypeID)
			}
			projectTypeID = *input.ProjectTypeID
		}

		name := t.Name
		if input.Name != nil {
			if name = strings.TrimSpace(*input.Name); name == "" {
				return invalid(errors.New("name must not be blank"))
			}
		}

		if name != t.Name || projectTypeID != t.ProjectTypeID {
			if err := ensureTemplateNameFree(ctx, tx, name, projectTypeID, t.ID); err != nil {
				return err
			}
		}

		t.Name = name
		t.ProjectTypeID = projectTypeID
		if input.Description != nil {
			t.Description = *input.Description
		}
		if input.NumberOfSubmissions != nil {
			if *input.NumberOfSubmissions == 0 {
				t.NumberOfSubmissions = nil
			} else {
				capacity := *input.NumberOfSubmissions
				t.NumberOfSubmissions = &capacity
			}
		}
		if input.Sections != nil {
			t.SetSchema(sections)
		}

		if err := tx.Template.Update(ctx, t); err != nil {
			return translate(err, "report template", t.Name)
		}
		updated = t
		return utils.LogAudit(ctx, tx.Audit, audit.ActionUpdate, audit.ResourceTemplate, t.ID.String(), &before, t,
			fmt.Sprintf("updated report template %s", t.Name))
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete refuses while submissions still reference the template. The row
// lock orders it against submission creates, which lock the same row.
func (s *TemplateService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		t, err := tx.Template.GetForUpdate(ctx, id)
		if err != nil {
			return translate(err, "report template", id)
		}
		count, err := tx.Submission.CountByTemplate(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: report template %s has %d submissions", ErrConflict, t.Name, count)
		}
		if err := tx.Template.Delete(ctx, id); err != nil {
			return translate(err, "report template", id)
		}
		return utils.LogAudit(ctx, tx.Audit, audit.ActionDelete, audit.ResourceTemplate, id.String(), t, nil,
			fmt.Sprintf("deleted report template %s", t.Name))
	})
}

func (s *TemplateService) checkSchema(sections form.Sections) (form.Sections, error) {
	if sections == nil {
		sections = form.Sections{}
	}
	if err := sections.Validate(s.StrictSchema); err != nil {
		return nil, invalid(err)
	}
	return sections.Normalize(), nil
}

func ensureTemplateNameFree(ctx context.Context, tx *repository.Repos, name string, projectTypeID, self uuid.UUID) error {
	existing, err := tx.Template.FindByNameAndType(ctx, name, projectTypeID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID != self:
		return fmt.Errorf("%w: report template %q already exists for this project type", ErrConflict, name)
	}
	return nil
}
