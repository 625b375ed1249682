package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/linskybing/report-hub/internal/domain/projecttype"
	"gorm.io/gorm"
)

type ProjectTypeRepo interface {
	Create(ctx context.Context, pt *projecttype.ProjectType) error
	GetByID(ctx context.Context, id uuid.UUID) (*projecttype.ProjectType, error)
	GetByName(ctx context.Context, name string) (*projecttype.ProjectType, error)
	// GetForUpdate takes an exclusive row lock, held until the transaction
	// ends. Deletes use it.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*projecttype.ProjectType, error)
	// GetForShare takes a shared row lock so concurrent child inserts do not
	// block each other but do block a delete.
	GetForShare(ctx context.Context, id uuid.UUID) (*projecttype.ProjectType, error)
	List(ctx context.Context, page, pageSize int) ([]projecttype.ProjectType, int64, error)
	Update(ctx context.Context, pt *projecttype.ProjectType) error
	Delete(ctx context.Context, id uuid.UUID) error
	WithTx(tx *gorm.DB) ProjectTypeRepo
}

type DBProjectTypeRepo struct {
	db *gorm.DB
}

func NewProjectTypeRepo(db *gorm.DB) *DBProjectTypeRepo {
	return &DBProjectTypeRepo{db: db}
}

func (r *DBProjectTypeRepo) Create(ctx context.Context, pt *projecttype.ProjectType) error {
	return r.db.WithContext(ctx).Create(pt).Error
}

func (r *DBProjectTypeRepo) GetByID(ctx context.Context, id uuid.UUID) (*projecttype.ProjectType, error) {
	var pt projecttype.ProjectType
	if err := r.db.WithContext(ctx).First(&pt, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &pt, nil
}

func (r *DBProjectTypeRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*projecttype.ProjectType, error) {
	var pt projecttype.ProjectType
	if err := forUpdate(r.db.WithContext(ctx)).First(&pt, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &pt, nil
}

func (r *DBProjectTypeRepo) GetForShare(ctx context.Context, id uuid.UUID) (*projecttype.ProjectType, error) {
	var pt projecttype.ProjectType
	if err := forShare(r.db.WithContext(ctx)).First(&pt, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &pt, nil
}

func (r *DBProjectTypeRepo) GetByName(ctx context.Context, name string) (*projecttype.ProjectType, error) {
	var pt projecttype.ProjectType
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&pt).Error; err != nil {
		return nil, err
	}
	return &pt, nil
}

func (r *DBProjectTypeRepo) List(ctx context.Context, page, pageSize int) ([]projecttype.ProjectType, int64, error) {
	var (
		items []projecttype.ProjectType
		total int64
	)
	query := r.db.WithContext(ctx).Model(&projecttype.ProjectType{}).Session(&gorm.Session{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := paginate(query.Order("created_at DESC"), page, pageSize).Find(&items).Error
	return items, total, err
}

func (r *DBProjectTypeRepo) Update(ctx context.Context, pt *projecttype.ProjectType) error {
	return r.db.WithContext(ctx).Save(pt).Error
}

func (r *DBProjectTypeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&projecttype.ProjectType{}, "id = ?", id).Error
}

func (r *DBProjectTypeRepo) WithTx(tx *gorm.DB) ProjectTypeRepo {
	if tx == nil {
		return r
	}
	return &DBProjectTypeRepo{db: tx}
}
