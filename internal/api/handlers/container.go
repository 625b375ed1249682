package handlers

import (
	"github.com/linskybing/report-hub/internal/application"
	"github.com/linskybing/report-hub/internal/notify"
)

type Handlers struct {
	Audit       *AuditHandler
	ProjectType *ProjectTypeHandler
	Project     *ProjectHandler
	Template    *TemplateHandler
	Submission  *SubmissionHandler
	Image       *ImageHandler
	Events      *EventsHandler
}

func New(svc *application.Services, hub *notify.Hub) *Handlers {
	return &Handlers{
		Audit:       NewAuditHandler(svc.Audit),
		ProjectType: NewProjectTypeHandler(svc.ProjectType),
		Project:     NewProjectHandler(svc.Project),
		Template:    NewTemplateHandler(svc.Template, svc.Export),
		Submission:  NewSubmissionHandler(svc.Submission, svc.Statistics),
		Image:       NewImageHandler(svc.Image),
		Events:      NewEventsHandler(hub),
	}
}
