package migrations

import (
	"fmt"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/linskybing/report-hub/internal/domain/audit"
	"github.com/linskybing/report-hub/internal/domain/project"
	"github.com/linskybing/report-hub/internal/domain/projecttype"
	"github.com/linskybing/report-hub/internal/domain/reporttemplate"
	"github.com/linskybing/report-hub/internal/domain/submission"
	"gorm.io/gorm"
)

type foreignKey struct {
	name, table, column, parent string
}

var restrictForeignKeys = []foreignKey{
	{"fk_projects_project_type", "projects", "project_type_id", "project_types"},
	{"fk_report_templates_project_type", "report_templates", "project_type_id", "project_types"},
	{"fk_report_submissions_template", "report_submissions", "report_template_id", "report_templates"},
	{"fk_report_submissions_project", "report_submissions", "project_id", "projects"},
}

func Migrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "20261001_create_report_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(
					&projecttype.ProjectType{},
					&project.Project{},
					&reporttemplate.ReportTemplate{},
					&submission.ReportSubmission{},
				)
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("report_submissions", "report_templates", "projects", "project_types")
			},
		},
		{
			ID: "20261001_create_audit_logs",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&audit.AuditLog{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("audit_logs")
			},
		},
		{
			// SQLite cannot add constraints to an existing table.
			ID: "20261002_submission_status_check",
			Migrate: func(tx *gorm.DB) error {
				if tx.Dialector.Name() != "postgres" {
					return nil
				}
				return tx.Exec(`ALTER TABLE report_submissions ADD CONSTRAINT chk_submission_status
					CHECK (status IN ('DRAFT', 'SUBMITTED', 'APPROVED', 'REJECTED'))`).Error
			},
			Rollback: func(tx *gorm.DB) error {
				if tx.Dialector.Name() != "postgres" {
					return nil
				}
				return tx.Exec("ALTER TABLE report_submissions DROP CONSTRAINT IF EXISTS chk_submission_status").Error
			},
		},
		{
			// Parents cannot be deleted while children reference them. The
			// services check this too; the constraints cover writes that race
			// those checks. SQLite cannot add constraints to an existing table.
			ID: "20261003_restrict_foreign_keys",
			Migrate: func(tx *gorm.DB) error {
				if tx.Dialector.Name() != "postgres" {
					return nil
				}
				for _, fk := range restrictForeignKeys {
					stmt := fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s (id) ON DELETE RESTRICT",
						fk.table, fk.name, fk.column, fk.parent)
					if err := tx.Exec(stmt).Error; err != nil {
						return err
					}
				}
				return nil
			},
			Rollback: func(tx *gorm.DB) error {
				if tx.Dialector.Name() != "postgres" {
					return nil
				}
				for _, fk := range restrictForeignKeys {
					if err := tx.Exec(fmt.Sprintf("ALTER TABLE %s DROP CONSTRAINT IF EXISTS %s", fk.table, fk.name)).Error; err != nil {
						return err
					}
				}
				return nil
			},
		},
	}
}

// Run applies every pending migration.
func Run(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, Migrations())
	return m.Migrate()
}
