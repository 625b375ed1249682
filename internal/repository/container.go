package repository

import (
	"context"
	"math"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repos struct {
	ProjectType ProjectTypeRepo
	Project     ProjectRepo
	Template    ReportTemplateRepo
	Submission  SubmissionRepo
	Audit       AuditRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		ProjectType: NewProjectTypeRepo(db),
		Project:     NewProjectRepo(db),
		Template:    NewReportTemplateRepo(db),
		Submission:  NewSubmissionRepo(db),
		Audit:       NewAuditRepo(db),
		db:          db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		ProjectType: r.ProjectType.WithTx(tx),
		Project:     r.Project.WithTx(tx),
		Template:    r.Template.WithTx(tx),
		Submission:  r.Submission.WithTx(tx),
		Audit:       r.Audit.WithTx(tx),
		db:          tx,
	}
}

// ExecTx runs fn inside one database transaction. Repos assembled without a
// database (unit tests with mocks) run fn directly.
func (r *Repos) ExecTx(ctx context.Context, fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}

// DB exposes the underlying handle for health checks.
func (r *Repos) DB() *gorm.DB {
	return r.db
}

// forUpdate adds a row lock on dialects that support one. SQLite serializes
// writers on its own.
func forUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "postgres" {
		return db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return db
}

func forShare(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "postgres" {
		return db.Clauses(clause.Locking{Strength: "SHARE"})
	}
	return db
}

func paginate(db *gorm.DB, page, pageSize int) *gorm.DB {
	if pageSize <= 0 {
		return db
	}
	if page < 1 {
		page = 1
	}
	// Clamp so the offset cannot overflow; such a page is past the end anyway.
	if maxPage := math.MaxInt32/pageSize + 1; page > maxPage {
		page = maxPage
	}
	return db.Offset((page - 1) * pageSize).Limit(pageSize)
}
