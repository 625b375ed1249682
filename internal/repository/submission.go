package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/linskybing/report-hub/internal/domain/submission"
	"gorm.io/gorm"
)

type SubmissionRepo interface {
	Create(ctx context.Context, s *submission.ReportSubmission) error
	GetByID(ctx context.Context, id uuid.UUID) (*submission.ReportSubmission, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*submission.ReportSubmission, error)
	Update(ctx context.Context, s *submission.ReportSubmission) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByProjectAndTemplate(ctx context.Context, projectID, templateID uuid.UUID) (int64, error)
	CountByTemplate(ctx context.Context, templateID uuid.UUID) (int64, error)
	CountByStatus(ctx context.Context, status submission.Status, projectID *uuid.UUID) (int64, error)
	List(ctx context.Context, q submission.ListQuery) ([]submission.ReportSubmission, int64, error)
	ListByTemplate(ctx context.Context, templateID uuid.UUID) ([]submission.ReportSubmission, error)
	WithTx(tx *gorm.DB) SubmissionRepo
}

type DBSubmissionRepo struct {
	db *gorm.DB
}

func NewSubmissionRepo(db *gorm.DB) *DBSubmissionRepo {
	return &DBSubmissionRepo{db: db}
}

func (r *DBSubmissionRepo) Create(ctx context.Context, s *submission.ReportSubmission) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *DBSubmissionRepo) GetByID(ctx context.Context, id uuid.UUID) (*submission.ReportSubmission, error) {
	var s submission.ReportSubmission
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *DBSubmissionRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*submission.ReportSubmission, error) {
	var s submission.ReportSubmission
	if err := forUpdate(r.db.WithContext(ctx)).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *DBSubmissionRepo) Update(ctx context.Context, s *submission.ReportSubmission) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *DBSubmissionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&submission.ReportSubmission{}, "id = ?", id).Error
}

func (r *DBSubmissionRepo) CountByProjectAndTemplate(ctx context.Context, projectID, templateID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&submission.ReportSubmission{}).
		Where("project_id = ? AND report_template_id = ?", projectID, templateID).
		Count(&count).Error
	return count, err
}

func (r *DBSubmissionRepo) CountByTemplate(ctx context.Context, templateID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&submission.ReportSubmission{}).
		Where("report_template_id = ?", templateID).
		Count(&count).Error
	return count, err
}

func (r *DBSubmissionRepo) CountByStatus(ctx context.Context, status submission.Status, projectID *uuid.UUID) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&submission.ReportSubmission{}).Where("status = ?", status)
	if projectID != nil {
		query = query.Where("project_id = ?", *projectID)
	}
	err := query.Count(&count).Error
	return count, err
}

// List returns one page of submissions, newest first. A PageSize of zero
// returns every match.
func (r *DBSubmissionRepo) List(ctx context.Context, q submission.ListQuery) ([]submission.ReportSubmission, int64, error) {
	var (
		items []submission.ReportSubmission
		total int64
	)
	query := r.db.WithContext(ctx).Model(&submission.ReportSubmission{})
	if q.ProjectID != nil {
		query = query.Where("project_id = ?", *q.ProjectID)
	}
	if q.Status != nil {
		query = query.Where("status = ?", *q.Status)
	}
	query = query.Session(&gorm.Session{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := paginate(query.Order("created_at DESC"), q.Page, q.PageSize).Find(&items).Error
	return items, total, err
}

func (r *DBSubmissionRepo) ListByTemplate(ctx context.Context, templateID uuid.UUID) ([]submission.ReportSubmission, error) {
	var items []submission.ReportSubmission
	err := r.db.WithContext(ctx).
		Where("report_template_id = ?", templateID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *DBSubmissionRepo) WithTx(tx *gorm.DB) SubmissionRepo {
	if tx == nil {
		return r
	}
	return &DBSubmissionRepo{db: tx}
}
