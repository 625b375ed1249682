package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/linskybing/report-hub/internal/domain/audit"
	"github.com/linskybing/report-hub/internal/domain/projecttype"
	"github.com/linskybing/report-hub/internal/repository"
	"github.com/linskybing/report-hub/pkg/response"
	"github.com/linskybing/report-hub/pkg/utils"
	"gorm.io/gorm"
)

type ProjectTypeService struct {
	Repos *repository.Repos
}

func NewProjectTypeService(repos *repository.Repos) *ProjectTypeService {
	return &ProjectTypeService{Repos: repos}
}

func (s *ProjectTypeService) Create(ctx context.Context, input projecttype.CreateProjectTypeDTO) (*projecttype.ProjectType, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, invalid(errors.New("name is required"))
	}

	pt := &projecttype.ProjectType{Name: name, Description: input.Description}
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		if err := s.ensureNameFree(ctx, tx, name, uuid.Nil); err != nil {
			return err
		}
		if err := tx.ProjectType.Create(ctx, pt); err != nil {
			return translate(err, "project type", name)
		}
		return utils.LogAudit(ctx, tx.Audit, audit.ActionCreate, audit.ResourceProjectType, pt.ID.String(), nil, pt,
			fmt.Sprintf("created project type %s", pt.Name))
	})
	if err != nil {
		return nil, err
	}
	return pt, nil
}

func (s *ProjectTypeService) Get(ctx context.Context, id uuid.UUID) (*projecttype.ProjectType, error) {
	pt, err := s.Repos.ProjectType.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "project type", id)
	}
	return pt, nil
}

func (s *ProjectTypeService) List(ctx context.Context, page, pageSize int) (response.Page[projecttype.ProjectType], error) {
	page, pageSize = normalizePage(page, pageSize)
	items, total, err := s.Repos.ProjectType.List(ctx, page, pageSize)
	if err != nil {
		return response.Page[projecttype.ProjectType]{}, err
	}
	return response.NewPage(items, total, page, pageSize), nil
}

func (s *ProjectTypeService) Update(ctx context.Context, id uuid.UUID, input projecttype.UpdateProjectTypeDTO) (*projecttype.ProjectType, error) {
	var updated *projecttype.ProjectType
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		pt, err := tx.ProjectType.GetForUpdate(ctx, id)
		if err != nil {
			return translate(err, "project type", id)
		}
		before := *pt

		if input.Name != nil {
			name := strings.TrimSpace(*input.Name)
			if name == "" {
				return invalid(errors.New("name must not be blank"))
			}
			if name != pt.Name {
				if err := s.ensureNameFree(ctx, tx, name, pt.ID); err != nil {
					return err
				}
			}
			pt.Name = name
		}
		if input.Description != nil {
			pt.Description = *input.Description
		}

		if err := tx.ProjectType.Update(ctx, pt); err != nil {
			return translate(err, "project type", pt.Name)
		}
		updated = pt
		return utils.LogAudit(ctx, tx.Audit, audit.ActionUpdate, audit.ResourceProjectType, pt.ID.String(), before, pt,
			fmt.Sprintf("updated project type %s", pt.Name))
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete refuses while templates or projects still reference the type.
// Template and project creates share-lock the type row, so they cannot slip
// in between the counts and the delete.
func (s *ProjectTypeService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		pt, err := tx.ProjectType.GetForUpdate(ctx, id)
		if err != nil {
			return translate(err, "project type", id)
		}

		templates, err := tx.Template.CountByProjectType(ctx, id)
		if err != nil {
			return err
		}
		if templates > 0 {
			return fmt.Errorf("%w: project type %s still has %d report templates", ErrConflict, pt.Name, templates)
		}
		projects, err := tx.Project.CountByProjectType(ctx, id)
		if err != nil {
			return err
		}
		if projects > 0 {
			return fmt.Errorf("%w: project type %s is used by %d projects", ErrConflict, pt.Name, projects)
		}

		if err := tx.ProjectType.Delete(ctx, id); err != nil {
			return translate(err, "project type", id)
		}
		return utils.LogAudit(ctx, tx.Audit, audit.ActionDelete, audit.ResourceProjectType, id.String(), pt, nil,
			fmt.Sprintf("deleted project type %s", pt.Name))
	})
}

func (s *ProjectTypeService) ensureNameFree(ctx context.Context, tx *repository.Repos, name string, self uuid.UUID) error {
	existing, err := tx.ProjectType.GetByName(ctx, name)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID != self:
		return fmt.Errorf("%w: project type %q already exists", ErrConflict, name)
	}
	return nil
}
