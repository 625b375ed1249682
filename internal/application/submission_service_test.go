package application_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/report-hub/internal/application"
	"github.com/linskybing/report-hub/internal/domain/audit"
	"github.com/linskybing/report-hub/internal/domain/form"
	"github.com/linskybing/report-hub/internal/domain/submission"
	"github.com/linskybing/report-hub/internal/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusPtr(s submission.Status) *submission.Status { return &s }

func TestSubmissionCapPerProjectAndTemplate(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := agentCtx()
	pt := env.projectType(t, "Audit")
	p1 := env.project(t, "P1", pt)
	p2 := env.project(t, "P2", pt)
	tpl := env.template(t, "Checklist", pt, intPtr(1))

	first, err := env.svc.Submission.Create(ctx, submission.CreateSubmissionDTO{ProjectID: p1.ID, ReportTemplateID: tpl.ID})
	require.NoError(t, err)
	assert.Equal(t, submission.StatusDraft, first.Status)
	assert.Equal(t, "agent-7", first.CreatedBy)

	_, err = env.svc.Submission.Create(ctx, submission.CreateSubmissionDTO{ProjectID: p1.ID, ReportTemplateID: tpl.ID})
	assert.ErrorIs(t, err, application.ErrConflict)

	_, err = env.svc.Submission.Create(ctx, submission.CreateSubmissionDTO{ProjectID: p2.ID, ReportTemplateID: tpl.ID})
	assert.NoError(t, err, "the cap counts per project")
}

func TestSubmissionCapAllowsNth(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := agentCtx()
	pt := env.projectType(t, "Audit")
	p := env.project(t, "P1", pt)
	tpl := env.template(t, "Checklist", pt, intPtr(3))

	for i := 0; i < 3; i++ {
		_, err := env.svc.Submission.Create(ctx, submission.CreateSubmissionDTO{ProjectID: p.ID, ReportTemplateID: tpl.ID})
		require.NoError(t, err, "create %d", i+1)
	}
	_, err := env.svc.Submission.Create(ctx, submission.CreateSubmissionDTO{ProjectID: p.ID, ReportTemplateID: tpl.ID})
	assert.ErrorIs(t, err, application.ErrConflict)
}

func TestSubmissionCreateChecksReferences(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := agentCtx()
	pt := env.projectType(t, "Audit")
	p := env.project(t, "P1", pt)
	tpl := env.template(t, "Checklist", pt, nil)

	_, err := env.svc.Submission.Create(ctx, submission.CreateSubmissionDTO{ProjectID: uuid.New(), ReportTemplateID: tpl.ID})
	assert.ErrorIs(t, err, application.ErrNotFound)

	_, err = env.svc.Submission.Create(ctx, submission.CreateSubmissionDTO{ProjectID: p.ID, ReportTemplateID: uuid.New()})
	assert.ErrorIs(t, err, application.ErrNotFound)
}

func TestSubmissionCreateInitialStatus(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := agentCtx()
	pt := env.projectType(t, "Audit")
	p := env.project(t, "P1", pt)
	tpl := env.template(t, "Checklist", pt, nil)

	sub, err := env.svc.Submission.Create(ctx, submission.CreateSubmissionDTO{
		ProjectID: p.ID, ReportTemplateID: tpl.ID, Status: statusPtr(submission.StatusSubmitted),
	})
	require.NoError(t, err)
	assert.Equal(t, submission.StatusSubmitted, sub.Status)
	assert.Equal(t, []notify.Event{notify.EventSubmissionCreated, notify.EventSubmissionSubmitted}, env.notifier.Events())

	_, err = env.svc.Submission.Create(ctx, submission.CreateSubmissionDTO{
		ProjectID: p.ID, ReportTemplateID: tpl.ID, Status: statusPtr(submission.StatusApproved),
	})
	assert.ErrorIs(t, err, application.ErrInvalidState)
}

func TestSubmissionApproveFlow(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := agentCtx()
	pt := env.projectType(t, "Audit")
	p := env.project(t, "P1", pt)
	tpl := env.template(t, "Checklist", pt, nil)

	sub, err := env.svc.Submission.Create(ctx, submission.CreateSubmissionDTO{ProjectID: p.ID, ReportTemplateID: tpl.ID})
	require.NoError(t, err)

	_, err = env.svc.Submission.Approve(adminCtx(), sub.ID, nil)
	assert.ErrorIs(t, err, application.ErrInvalidState, "a draft cannot be approved")

	sub, err = env.svc.Submission.SubmitForApproval(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, submission.StatusSubmitted, sub.Status)

	_, err = env.svc.Submission.SubmitForApproval(ctx, sub.ID)
	assert.ErrorIs(t, err, application.ErrInvalidState)

	before := time.Now()
	sub, err = env.svc.Submission.Approve(adminCtx(), sub.ID, strPtr("ok"))
	require.NoError(t, err)
	assert.Equal(t, submission.StatusApproved, sub.Status)
	require.NotNil(t, sub.ApprovedAt)
	assert.WithinRange(t, *sub.ApprovedAt, before, time.Now())
	require.NotNil(t, sub.ApprovalComments)
	assert.Equal(t, "ok", *sub.ApprovalComments)
	assert.Nil(t, sub.RejectedAt)

	stored, err := env.svc.Submission.Get(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, submission.StatusApproved, stored.Status)
	assert.NotNil(t, stored.ApprovedAt)

	err = env.svc.Submission.Delete(ctx, sub.ID)
	assert.ErrorIs(t, err, application.ErrInvalidState)
	_, err = env.svc.Submission.Reject(adminCtx(), sub.ID, nil)
	assert.ErrorIs(t, err, application.ErrInvalidState)
	_, err = env.svc.Submission.Approve(adminCtx(), sub.ID, nil)
	assert.ErrorIs(t, err, application.ErrInvalidState)

	assert.Equal(t, []notify.Event{
		notify.EventSubmissionCreated,
		notify.EventSubmissionSubmitted,
		notify.EventSubmissionApproved,
	}, env.notifier.Events())
}

func TestSubmissionRejectFreezesReport(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := agentCtx()
	pt := env.projectType(t, "Audit")
	p := env.project(t, "P1", pt)
	tpl := env.template(t, "Checklist", pt, nil)

	sub, err := env.svc.Submission.Create(ctx, submission.CreateSubmissionDTO{
		ProjectID: p.ID, ReportTemplateID: tpl.ID, Status: statusPtr(submission.StatusSubmitted),
	})
	require.NoError(t, err)

	sub, err = env.svc.Submission.Reject(adminCtx(), sub.ID, strPtr("incomplete"))
	require.NoError(t, err)
	assert.Equal(t, submission.StatusRejected, sub.Status)
	assert.NotNil(t, sub.RejectedAt)
	assert.Equal(t, "incomplete", *sub.RejectionComments)

	data := submission.ReportData{{ID: "s1", Data: []submission.FieldValue{{ID: "f1", Value: form.String("late")}}}}
	_, err = env.svc.Submission.Update(ctx, sub.ID, submission.UpdateSubmissionDTO{ReportData: &data})
	assert.ErrorIs(t, err, application.ErrInvalidState)

	_, err = env.svc.Submission.SubmitForApproval(ctx, sub.ID)
	assert.ErrorIs(t, err, application.ErrInvalidState)
}

func TestSubmissionUpdate(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := agentCtx()
	pt := env.projectType(t, "Audit")
	p := env.project(t, "P1", pt)
	tpl := env.template(t, "Checklist", pt, nil)

	sub, err := env.svc.Submission.Create(ctx, submission.CreateSubmissionDTO{ProjectID: p.ID, ReportTemplateID: tpl.ID})
	require.NoError(t, err)

	data := submission.ReportData{{ID: "s1", Name: "General", Data: []submission.FieldValue{
		{ID: "f1", Name: "Notes", Value: form.String("all good"), Type: form.FieldText},
	}}}
	updated, err := env.svc.Submission.Update(ctx, sub.ID, submission.UpdateSubmissionDTO{ReportData: &data})
	require.NoError(t, err)
	assert.Equal(t, submission.StatusDraft, updated.Status)

	stored, err := env.svc.Submission.Get(ctx, sub.ID)
	require.NoError(t, err)
	fv, ok := stored.Data().Lookup("s1", "f1")
	require.True(t, ok)
	assert.Equal(t, "all good", fv.Value.Text())

	_, err = env.svc.Submission.Update(ctx, sub.ID, submission.UpdateSubmissionDTO{Status: statusPtr(submission.StatusApproved)})
	assert.ErrorIs(t, err, application.ErrInvalidState, "approval only goes through Approve")

	updated, err = env.svc.Submission.Update(ctx, sub.ID, submission.UpdateSubmissionDTO{Status: statusPtr(submission.StatusSubmitted)})
	require.NoError(t, err)
	assert.Equal(t, submission.StatusSubmitted, updated.Status)

	_, err = env.svc.Submission.Update(ctx, uuid.New(), submission.UpdateSubmissionDTO{})
	assert.ErrorIs(t, err, application.ErrNotFound)
}

func TestSubmissionDelete(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := agentCtx()
	pt := env.projectType(t, "Audit")
	p := env.project(t, "P1", pt)
	tpl := env.template(t, "Checklist", pt, intPtr(1))

	sub, err := env.svc.Submission.Create(ctx, submission.CreateSubmissionDTO{ProjectID: p.ID, ReportTemplateID: tpl.ID})
	require.NoError(t, err)
	require.NoError(t, env.svc.Submission.Delete(ctx, sub.ID))

	_, err = env.svc.Submission.Get(ctx, sub.ID)
	assert.ErrorIs(t, err, application.ErrNotFound)

	_, err = env.svc.Submission.Create(ctx, submission.CreateSubmissionDTO{ProjectID: p.ID, ReportTemplateID: tpl.ID})
	assert.NoError(t, err, "a deleted draft frees its slot")

	assert.ErrorIs(t, env.svc.Submission.Delete(ctx, uuid.New()), application.ErrNotFound)
}

func TestSubmissionTerminalStates(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := agentCtx()
	pt := env.projectType(t, "Audit")
	p := env.project(t, "P1", pt)
	tpl := env.template(t, "Checklist", pt, nil)
	data := submission.ReportData{{ID: "s1", Data: []submission.FieldValue{{ID: "f1", Value: form.String("late")}}}}

	create := func(status submission.Status) *submission.ReportSubmission {
		sub, err := env.svc.Submission.Create(ctx, submission.CreateSubmissionDTO{
			ProjectID: p.ID, ReportTemplateID: tpl.ID, Status: statusPtr(status),
		})
		require.NoError(t, err)
		return sub
	}

	t.Run("update approved", func(t *testing.T) {
		sub := create(submission.StatusSubmitted)
		_, err := env.svc.Submission.Approve(adminCtx(), sub.ID, nil)
		require.NoError(t, err)

		_, err = env.svc.Submission.Update(ctx, sub.ID, submission.UpdateSubmissionDTO{ReportData: &data})
		assert.ErrorIs(t, err, application.ErrInvalidState)
		_, err = env.svc.Submission.Update(ctx, sub.ID, submission.UpdateSubmissionDTO{Status: statusPtr(submission.StatusDraft)})
		assert.ErrorIs(t, err, application.ErrInvalidState)
	})

	t.Run("delete rejected", func(t *testing.T) {
		sub := create(submission.StatusSubmitted)
		before := time.Now()
		rejected, err := env.svc.Submission.Reject(adminCtx(), sub.ID, nil)
		require.NoError(t, err)
		require.NotNil(t, rejected.RejectedAt)
		assert.WithinRange(t, *rejected.RejectedAt, before, time.Now())

		assert.ErrorIs(t, env.svc.Submission.Delete(ctx, sub.ID), application.ErrInvalidState)
		stored, err := env.svc.Submission.Get(ctx, sub.ID)
		require.NoError(t, err)
		assert.Equal(t, submission.StatusRejected, stored.Status)
	})

	t.Run("reject draft", func(t *testing.T) {
		sub := create(submission.StatusDraft)
		_, err := env.svc.Submission.Reject(adminCtx(), sub.ID, strPtr("too early"))
		assert.ErrorIs(t, err, application.ErrInvalidState)

		stored, err := env.svc.Submission.Get(ctx, sub.ID)
		require.NoError(t, err)
		assert.Equal(t, submission.StatusDraft, stored.Status)
		assert.Nil(t, stored.RejectedAt)
	})
}

func TestSubmissionStrictReportData(t *testing.T) {
	env := newTestEnv(t, nil)
	env.svc.Submission.StrictReportData = true
	ctx := agentCtx()
	pt := env.projectType(t, "Audit")
	p := env.project(t, "P1", pt)
	tpl := env.template(t, "Checklist", pt, nil)

	unknown := submission.ReportData{{ID: "s9", Data: []submission.FieldValue{{ID: "f1", Value: form.String("x")}}}}
	_, err := env.svc.Submission.Create(ctx, submission.CreateSubmissionDTO{ProjectID: p.ID, ReportTemplateID: tpl.ID, ReportData: unknown})
	assert.ErrorIs(t, err, application.ErrValidation)

	badOption := submission.ReportData{{ID: "s1", Data: []submission.FieldValue{{ID: "f2", Value: form.String("snow")}}}}
	_, err = env.svc.Submission.Create(ctx, submission.CreateSubmissionDTO{ProjectID: p.ID, ReportTemplateID: tpl.ID, ReportData: badOption})
	assert.ErrorIs(t, err, application.ErrValidation)

	sub, err := env.svc.Submission.Create(ctx, submission.CreateSubmissionDTO{ProjectID: p.ID, ReportTemplateID: tpl.ID})
	require.NoError(t, err, "drafts may leave required fields empty")

	_, err = env.svc.Submission.SubmitForApproval(ctx, sub.ID)
	assert.ErrorIs(t, err, application.ErrValidation, "f2 is required before submitting")

	answered := submission.ReportData{{ID: "s1", Data: []submission.FieldValue{{ID: "f2", Value: form.String("rain")}}}}
	_, err = env.svc.Submission.Update(ctx, sub.ID, submission.UpdateSubmissionDTO{ReportData: &answered})
	require.NoError(t, err)

	sub, err = env.svc.Submission.SubmitForApproval(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, submission.StatusSubmitted, sub.Status)
}

func TestSubmissionListing(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := agentCtx()
	pt := env.projectType(t, "Audit")
	p1 := env.project(t, "P1", pt)
	p2 := env.project(t, "P2", pt)
	tpl := env.template(t, "Checklist", pt, nil)

	for i := 0; i < 3; i++ {
		_, err := env.svc.Submission.Create(ctx, submission.CreateSubmissionDTO{ProjectID: p1.ID, ReportTemplateID: tpl.ID})
		require.NoError(t, err)
	}
	_, err := env.svc.Submission.Create(ctx, submission.CreateSubmissionDTO{
		ProjectID: p2.ID, ReportTemplateID: tpl.ID, Status: statusPtr(submission.StatusSubmitted),
	})
	require.NoError(t, err)

	page, err := env.svc.Submission.ListByProject(ctx, p1.ID, 1, 2)
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.EqualValues(t, 3, page.Total)
	assert.Equal(t, 2, page.TotalPages)

	page, err = env.svc.Submission.ListByStatus(ctx, submission.StatusSubmitted, 0, 0)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, p2.ID, page.Items[0].ProjectID)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.PageSize)

	page, err = env.svc.Submission.List(ctx, nil, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 4, page.Total)

	items, err := env.svc.Submission.ListByProjectAndStatus(ctx, p1.ID, submission.StatusApproved)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	items, err = env.svc.Submission.ListByProjectAndStatus(ctx, p1.ID, submission.StatusDraft)
	require.NoError(t, err)
	assert.Len(t, items, 3)

	_, err = env.svc.Submission.ListByProject(ctx, uuid.New(), 1, 10)
	assert.ErrorIs(t, err, application.ErrNotFound)
}

func TestSubmissionHistory(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := agentCtx()
	pt := env.projectType(t, "Audit")
	p := env.project(t, "P1", pt)
	tpl := env.template(t, "Checklist", pt, nil)

	sub, err := env.svc.Submission.Create(ctx, submission.CreateSubmissionDTO{ProjectID: p.ID, ReportTemplateID: tpl.ID})
	require.NoError(t, err)
	_, err = env.svc.Submission.SubmitForApproval(ctx, sub.ID)
	require.NoError(t, err)
	_, err = env.svc.Submission.Approve(adminCtx(), sub.ID, strPtr("ok"))
	require.NoError(t, err)

	logs, err := env.svc.Submission.History(ctx, sub.ID)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, audit.ActionApprove, logs[0].Action)
	assert.Equal(t, "admin-1", logs[0].Actor)
	assert.Equal(t, audit.ActionSubmit, logs[1].Action)
	assert.Equal(t, audit.ActionCreate, logs[2].Action)
	assert.Equal(t, "agent-7", logs[2].Actor)
	assert.Equal(t, "10.0.0.7", logs[2].IPAddress)

	_, err = env.svc.Submission.History(ctx, uuid.New())
	assert.ErrorIs(t, err, application.ErrNotFound)
}

func TestStatistics(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := agentCtx()
	pt := env.projectType(t, "Audit")
	p := env.project(t, "P1", pt)
	other := env.project(t, "P2", pt)
	tpl := env.template(t, "Checklist", pt, nil)

	stats, err := env.svc.Statistics.GetStatistics(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, submission.Statistics{}, stats)

	create := func(status submission.Status) uuid.UUID {
		sub, err := env.svc.Submission.Create(ctx, submission.CreateSubmissionDTO{
			ProjectID: p.ID, ReportTemplateID: tpl.ID, Status: statusPtr(status),
		})
		require.NoError(t, err)
		return sub.ID
	}
	create(submission.StatusDraft)
	create(submission.StatusDraft)
	create(submission.StatusSubmitted)
	_, err = env.svc.Submission.Approve(adminCtx(), create(submission.StatusSubmitted), nil)
	require.NoError(t, err)
	_, err = env.svc.Submission.Reject(adminCtx(), create(submission.StatusSubmitted), nil)
	require.NoError(t, err)

	stats, err = env.svc.Statistics.GetStatistics(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, submission.Statistics{
		Total:          5,
		Draft:          2,
		Submitted:      1,
		Approved:       1,
		Rejected:       1,
		PendingReview:  1,
		CompletionRate: 40,
	}, stats)

	stats, err = env.svc.Statistics.GetStatistics(ctx, &other.ID)
	require.NoError(t, err)
	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.CompletionRate)

	missing := uuid.New()
	_, err = env.svc.Statistics.GetStatistics(ctx, &missing)
	assert.ErrorIs(t, err, application.ErrNotFound)
}
