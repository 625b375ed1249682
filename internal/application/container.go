package application

import (
	"github.com/linskybing/report-hub/internal/config"
	"github.com/linskybing/report-hub/internal/notify"
	"github.com/linskybing/report-hub/internal/repository"
	"github.com/linskybing/report-hub/internal/storage"
)

type Services struct {
	Audit       *AuditService
	ProjectType *ProjectTypeService
	Project     *ProjectService
	Template    *TemplateService
	Submission  *SubmissionService
	Statistics  *StatisticsService
	Export      *ExportService
	Image       *ImageService
}

func New(repos *repository.Repos, notifier notify.Notifier, store storage.ObjectStore) *Services {
	return &Services{
		Audit:       NewAuditService(repos),
		ProjectType: NewProjectTypeService(repos),
		Project:     NewProjectService(repos),
		Template:    NewTemplateService(repos, config.StrictSchema),
		Submission:  NewSubmissionService(repos, notifier, config.StrictReportData),
		Statistics:  NewStatisticsService(repos),
		Export:      NewExportService(repos),
		Image:       NewImageService(repos, store, config.MinioURLExpiry),
	}
}
