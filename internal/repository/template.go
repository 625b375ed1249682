package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/linskybing/report-hub/internal/domain/reporttemplate"
	"gorm.io/gorm"
)

type ReportTemplateRepo interface {
	Create(ctx context.Context, t *reporttemplate.ReportTemplate) error
	GetByID(ctx context.Context, id uuid.UUID) (*reporttemplate.ReportTemplate, error)
	// GetForUpdate loads the template and holds its row lock until the
	// surrounding transaction ends.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*reporttemplate.ReportTemplate, error)
	FindByNameAndType(ctx context.Context, name string, projectTypeID uuid.UUID) (*reporttemplate.ReportTemplate, error)
	List(ctx context.Context, q reporttemplate.ListTemplatesQuery) ([]reporttemplate.ReportTemplate, int64, error)
	Update(ctx context.Context, t *reporttemplate.ReportTemplate) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByProjectType(ctx context.Context, projectTypeID uuid.UUID) (int64, error)
	WithTx(tx *gorm.DB) ReportTemplateRepo
}

type DBReportTemplateRepo struct {
	db *gorm.DB
}

func NewReportTemplateRepo(db *gorm.DB) *DBReportTemplateRepo {
	return &DBReportTemplateRepo{db: db}
}

func (r *DBReportTemplateRepo) Create(ctx context.Context, t *reporttemplate.ReportTemplate) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *DBReportTemplateRepo) GetByID(ctx context.Context, id uuid.UUID) (*reporttemplate.ReportTemplate, error) {
	var t reporttemplate.ReportTemplate
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *DBReportTemplateRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*reporttemplate.ReportTemplate, error) {
	var t reporttemplate.ReportTemplate
	if err := forUpdate(r.db.WithContext(ctx)).First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *DBReportTemplateRepo) FindByNameAndType(ctx context.Context, name string, projectTypeID uuid.UUID) (*reporttemplate.ReportTemplate, error) {
	var t reporttemplate.ReportTemplate
	err := r.db.WithContext(ctx).
		Where("name = ? AND project_type_id = ?", name, projectTypeID).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *DBReportTemplateRepo) List(ctx context.Context, q reporttemplate.ListTemplatesQuery) ([]reporttemplate.ReportTemplate, int64, error) {
	var (
		items []reporttemplate.ReportTemplate
		total int64
	)
	query := r.db.WithContext(ctx).Model(&reporttemplate.ReportTemplate{})
	if q.ProjectTypeID != nil {
		query = query.Where("project_type_id = ?", *q.ProjectTypeID)
	}
	query = query.Session(&gorm.Session{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := paginate(query.Order("created_at DESC"), q.Page, q.PageSize).Find(&items).Error
	return items, total, err
}

func (r *DBReportTemplateRepo) Update(ctx context.Context, t *reporttemplate.ReportTemplate) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *DBReportTemplateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&reporttemplate.ReportTemplate{}, "id = ?", id).Error
}

func (r *DBReportTemplateRepo) CountByProjectType(ctx context.Context, projectTypeID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&reporttemplate.ReportTemplate{}).
		Where("project_type_id = ?", projectTypeID).
		Count(&count).Error
	return count, err
}

func (r *DBReportTemplateRepo) WithTx(tx *gorm.DB) ReportTemplateRepo {
	if tx == nil {
		return r
	}
	return &DBReportTemplateRepo{db: tx}
}
