package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/linskybing/report-hub/internal/domain/project"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *project.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*project.Project, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	CountByProjectType(ctx context.Context, projectTypeID uuid.UUID) (int64, error)
	WithTx(tx *gorm.DB) ProjectRepo
}

type DBProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *DBProjectRepo {
	return &DBProjectRepo{db: db}
}

func (r *DBProjectRepo) Create(ctx context.Context, p *project.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *DBProjectRepo) GetByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	var p project.Project
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *DBProjectRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&project.Project{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *DBProjectRepo) CountByProjectType(ctx context.Context, projectTypeID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&project.Project{}).Where("project_type_id = ?", projectTypeID).Count(&count).Error
	return count, err
}

func (r *DBProjectRepo) WithTx(tx *gorm.DB) ProjectRepo {
	if tx == nil {
		return r
	}
	return &DBProjectRepo{db: tx}
}
