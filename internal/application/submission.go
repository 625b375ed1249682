package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/report-hub/internal/domain/audit"
	"github.com/linskybing/report-hub/internal/domain/submission"
	"github.com/linskybing/report-hub/internal/metrics"
	"github.com/linskybing/report-hub/internal/notify"
	"github.com/linskybing/report-hub/internal/repository"
	"github.com/linskybing/report-hub/pkg/response"
	"github.com/linskybing/report-hub/pkg/types"
	"github.com/linskybing/report-hub/pkg/utils"
)

// SubmissionEvent is the payload sent with every submission notification.
type SubmissionEvent struct {
	SubmissionID uuid.UUID         `json:"submission_id"`
	ProjectID    uuid.UUID         `json:"project_id"`
	TemplateID   uuid.UUID         `json:"report_template_id"`
	Status       submission.Status `json:"status"`
	Actor        string            `json:"actor,omitempty"`
	Comments     *string           `json:"comments,omitempty"`
}

type SubmissionService struct {
	Repos    *repository.Repos
	Notifier notify.Notifier
	// StrictReportData checks report data against the template schema and
	// requires every required field before a report is submitted.
	StrictReportData bool

	now func() time.Time
}

func NewSubmissionService(repos *repository.Repos, notifier notify.Notifier, strict bool) *SubmissionService {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &SubmissionService{
		Repos:            repos,
		Notifier:         notifier,
		StrictReportData: strict,
		now:              time.Now,
	}
}

// Create files a new report. New reports start as DRAFT unless the caller
// asks for SUBMITTED. The cap check and the insert share one transaction
// holding the template row lock, so concurrent creates for the same template
// cannot overshoot the cap.
func (s *SubmissionService) Create(ctx context.Context, input submission.CreateSubmissionDTO) (*submission.ReportSubmission, error) {
	status := submission.StatusDraft
	if input.Status != nil {
		if !input.Status.Initial() {
			return nil, fmt.Errorf("%w: a new report cannot start as %s", ErrInvalidState, *input.Status)
		}
		status = *input.Status
	}

	caller, _ := types.CallerFrom(ctx)
	sub := &submission.ReportSubmission{
		ProjectID:        input.ProjectID,
		ReportTemplateID: input.ReportTemplateID,
		Status:           status,
		CreatedBy:        caller.ID(),
	}
	sub.SetData(input.ReportData)

	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		if err := projectExists(ctx, tx, input.ProjectID); err != nil {
			return err
		}
		t, err := tx.Template.GetForUpdate(ctx, input.ReportTemplateID)
		if err != nil {
			return translate(err, "report template", input.ReportTemplateID)
		}

		if s.StrictReportData {
			if err := sub.Data().Conform(t.Schema(), status == submission.StatusSubmitted); err != nil {
				return invalid(err)
			}
		}

		if t.NumberOfSubmissions != nil {
			count, err := tx.Submission.CountByProjectAndTemplate(ctx, input.ProjectID, input.ReportTemplateID)
			if err != nil {
				return err
			}
			if t.CapReached(count) {
				metrics.SubmissionCapRejections.Inc()
				return fmt.Errorf("%w: maximum number of submissions reached (%d) for this project and template",
					ErrConflict, *t.NumberOfSubmissions)
			}
		}

		if err := tx.Submission.Create(ctx, sub); err != nil {
			return err
		}
		return utils.LogAudit(ctx, tx.Audit, audit.ActionCreate, audit.ResourceSubmission, sub.ID.String(), nil, sub,
			fmt.Sprintf("created report as %s", sub.Status))
	})
	if err != nil {
		return nil, err
	}

	metrics.SubmissionsCreated.WithLabelValues(string(sub.Status)).Inc()
	s.Notifier.Notify(notify.EventSubmissionCreated, s.event(sub, caller, nil))
	if sub.Status == submission.StatusSubmitted {
		s.Notifier.Notify(notify.EventSubmissionSubmitted, s.event(sub, caller, nil))
	}
	return sub, nil
}

// Update replaces report data and may move a DRAFT to SUBMITTED. Decided
// reports cannot be changed, and approve or reject go through their own
// operations.
func (s *SubmissionService) Update(ctx context.Context, id uuid.UUID, input submission.UpdateSubmissionDTO) (*submission.ReportSubmission, error) {
	var (
		sub  *submission.ReportSubmission
		from submission.Status
	)
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		var err error
		if sub, err = tx.Submission.GetForUpdate(ctx, id); err != nil {
			return translate(err, "report", id)
		}
		from = sub.Status
		if from.Terminal() {
			return fmt.Errorf("%w: report is %s and can no longer be changed", ErrInvalidState, from)
		}
		before := *sub

		to := from
		if input.Status != nil && *input.Status != from {
			if *input.Status != submission.StatusSubmitted || !from.CanTransition(*input.Status) {
				return fmt.Errorf("%w: cannot move report from %s to %s", ErrInvalidState, from, *input.Status)
			}
			to = *input.Status
		}
		if input.ReportData != nil {
			sub.SetData(*input.ReportData)
		}

		if s.StrictReportData {
			if err := s.conform(ctx, tx, sub, to == submission.StatusSubmitted); err != nil {
				return err
			}
		}

		sub.Status = to
		if err := tx.Submission.Update(ctx, sub); err != nil {
			return err
		}
		action := audit.ActionUpdate
		if to != from {
			action = audit.ActionSubmit
		}
		return utils.LogAudit(ctx, tx.Audit, action, audit.ResourceSubmission, sub.ID.String(), &before, sub,
			fmt.Sprintf("updated report (%s -> %s)", from, to))
	})
	if err != nil {
		return nil, err
	}

	if sub.Status != from {
		s.transitioned(ctx, sub, from, nil)
	}
	return sub, nil
}

func (s *SubmissionService) SubmitForApproval(ctx context.Context, id uuid.UUID) (*submission.ReportSubmission, error) {
	return s.transition(ctx, id, submission.StatusSubmitted, nil)
}

func (s *SubmissionService) Approve(ctx context.Context, id uuid.UUID, comments *string) (*submission.ReportSubmission, error) {
	return s.transition(ctx, id, submission.StatusApproved, comments)
}

func (s *SubmissionService) Reject(ctx context.Context, id uuid.UUID, comments *string) (*submission.ReportSubmission, error) {
	return s.transition(ctx, id, submission.StatusRejected, comments)
}

func (s *SubmissionService) transition(ctx context.Context, id uuid.UUID, to submission.Status, comments *string) (*submission.ReportSubmission, error) {
	var (
		sub  *submission.ReportSubmission
		from submission.Status
	)
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		var err error
		if sub, err = tx.Submission.GetForUpdate(ctx, id); err != nil {
			return translate(err, "report", id)
		}
		from = sub.Status
		if !from.CanTransition(to) {
			return fmt.Errorf("%w: cannot move report from %s to %s", ErrInvalidState, from, to)
		}
		before := *sub

		if to == submission.StatusSubmitted && s.StrictReportData {
			if err := s.conform(ctx, tx, sub, true); err != nil {
				return err
			}
		}

		now := s.now()
		sub.Status = to
		switch to {
		case submission.StatusApproved:
			sub.ApprovedAt = &now
			sub.ApprovalComments = comments
		case submission.StatusRejected:
			sub.RejectedAt = &now
			sub.RejectionComments = comments
		}

		if err := tx.Submission.Update(ctx, sub); err != nil {
			return err
		}
		return utils.LogAudit(ctx, tx.Audit, actionFor(to), audit.ResourceSubmission, sub.ID.String(), &before, sub,
			fmt.Sprintf("report %s -> %s", from, to))
	})
	if err != nil {
		return nil, err
	}

	s.transitioned(ctx, sub, from, comments)
	return sub, nil
}

// Delete removes a report that has not been decided yet.
func (s *SubmissionService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		sub, err := tx.Submission.GetForUpdate(ctx, id)
		if err != nil {
			return translate(err, "report", id)
		}
		if sub.Status.Terminal() {
			return fmt.Errorf("%w: report is %s and cannot be deleted", ErrInvalidState, sub.Status)
		}
		if err := tx.Submission.Delete(ctx, id); err != nil {
			return err
		}
		return utils.LogAudit(ctx, tx.Audit, audit.ActionDelete, audit.ResourceSubmission, id.String(), sub, nil,
			fmt.Sprintf("deleted %s report", sub.Status))
	})
}

func (s *SubmissionService) Get(ctx context.Context, id uuid.UUID) (*submission.ReportSubmission, error) {
	sub, err := s.Repos.Submission.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err, "report", id)
	}
	return sub, nil
}

// List returns every report, optionally filtered by status.
func (s *SubmissionService) List(ctx context.Context, status *submission.Status, page, pageSize int) (response.Page[submission.ReportSubmission], error) {
	return s.page(ctx, submission.ListQuery{Status: status, Page: page, PageSize: pageSize})
}

func (s *SubmissionService) ListByStatus(ctx context.Context, status submission.Status, page, pageSize int) (response.Page[submission.ReportSubmission], error) {
	return s.page(ctx, submission.ListQuery{Status: &status, Page: page, PageSize: pageSize})
}

func (s *SubmissionService) ListByProject(ctx context.Context, projectID uuid.UUID, page, pageSize int) (response.Page[submission.ReportSubmission], error) {
	if err := projectExists(ctx, s.Repos, projectID); err != nil {
		return response.Page[submission.ReportSubmission]{}, err
	}
	return s.page(ctx, submission.ListQuery{ProjectID: &projectID, Page: page, PageSize: pageSize})
}

// ListByProjectAndStatus returns every matching report, newest first.
func (s *SubmissionService) ListByProjectAndStatus(ctx context.Context, projectID uuid.UUID, status submission.Status) ([]submission.ReportSubmission, error) {
	if err := projectExists(ctx, s.Repos, projectID); err != nil {
		return nil, err
	}
	items, _, err := s.Repos.Submission.List(ctx, submission.ListQuery{ProjectID: &projectID, Status: &status})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []submission.ReportSubmission{}
	}
	return items, nil
}

// History returns the audit trail of one report, newest first.
func (s *SubmissionService) History(ctx context.Context, id uuid.UUID) ([]audit.AuditLog, error) {
	resourceType := audit.ResourceSubmission
	resourceID := id.String()
	logs, err := s.Repos.Audit.GetAuditLogs(ctx, repository.AuditQueryParams{
		ResourceType: &resourceType,
		ResourceID:   &resourceID,
	})
	if err != nil {
		return nil, err
	}
	if len(logs) == 0 {
		if _, err := s.Get(ctx, id); err != nil {
			return nil, err
		}
	}
	return logs, nil
}

func (s *SubmissionService) page(ctx context.Context, q submission.ListQuery) (response.Page[submission.ReportSubmission], error) {
	q.Page, q.PageSize = normalizePage(q.Page, q.PageSize)
	items, total, err := s.Repos.Submission.List(ctx, q)
	if err != nil {
		return response.Page[submission.ReportSubmission]{}, err
	}
	return response.NewPage(items, total, q.Page, q.PageSize), nil
}

func (s *SubmissionService) conform(ctx context.Context, tx *repository.Repos, sub *submission.ReportSubmission, requireAll bool) error {
	t, err := tx.Template.GetByID(ctx, sub.ReportTemplateID)
	if err != nil {
		return translate(err, "report template", sub.ReportTemplateID)
	}
	if err := sub.Data().Conform(t.Schema(), requireAll); err != nil {
		return invalid(err)
	}
	return nil
}

func (s *SubmissionService) transitioned(ctx context.Context, sub *submission.ReportSubmission, from submission.Status, comments *string) {
	metrics.SubmissionTransitions.WithLabelValues(string(from), string(sub.Status)).Inc()

	caller, _ := types.CallerFrom(ctx)
	var ev notify.Event
	switch sub.Status {
	case submission.StatusSubmitted:
		ev = notify.EventSubmissionSubmitted
	case submission.StatusApproved:
		ev = notify.EventSubmissionApproved
	case submission.StatusRejected:
		ev = notify.EventSubmissionRejected
	default:
		return
	}
	s.Notifier.Notify(ev, s.event(sub, caller, comments))
}

func (s *SubmissionService) event(sub *submission.ReportSubmission, caller types.Caller, comments *string) SubmissionEvent {
	return SubmissionEvent{
		SubmissionID: sub.ID,
		ProjectID:    sub.ProjectID,
		TemplateID:   sub.ReportTemplateID,
		Status:       sub.Status,
		Actor:        caller.ID(),
		Comments:     comments,
	}
}

func actionFor(to submission.Status) string {
	switch to {
	case submission.StatusSubmitted:
		return audit.ActionSubmit
	case submission.StatusApproved:
		return audit.ActionApprove
	case submission.StatusRejected:
		return audit.ActionReject
	}
	return audit.ActionUpdate
}
