package application

import (
	"context"

	"github.com/google/uuid"
	"github.com/linskybing/report-hub/internal/domain/project"
	"github.com/linskybing/report-hub/internal/repository"
)

// ProjectService is the thin view of the project store the report workflow
// depends on. Full project management lives elsewhere.
type ProjectService struct {
	Repos *repository.Repos
}

func NewProjectService(repos *repository.Repos) *ProjectService {
	return &ProjectService{Repos: repos}
}

func (s *ProjectService) Create(ctx context.Context, input project.CreateProjectDTO) (*project.Project, error) {
	p := &project.Project{
		Name:          input.Name,
		Description:   input.Description,
		ProjectTypeID: input.ProjectTypeID,
		AgentID:       input.AgentID,
		CustomerID:    input.CustomerID,
	}
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		if input.ProjectTypeID != nil {
			if _, err := tx.ProjectType.GetForShare(ctx, *input.ProjectTypeID); err != nil {
				return translate(err, "project type", *input.ProjectTypeID)
			}
		}
		return tx.Project.Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProjectService) Get(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	p, err := s.Repos.Project.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "project", id)
	}
	return p, nil
}

func projectExists(ctx context.Context, repos *repository.Repos, id uuid.UUID) error {
	ok, err := repos.Project.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return notFound("project", id)
	}
	return nil
}
