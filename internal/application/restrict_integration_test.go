//go:build integration

package application_test

import (
	"sync"
	"testing"

	"github.com/linskybing/report-hub/internal/application"
	"github.com/linskybing/report-hub/internal/domain/reporttemplate"
	"github.com/linskybing/report-hub/internal/domain/submission"
	"github.com/linskybing/report-hub/internal/repository"
	"github.com/linskybing/report-hub/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateDeleteRacingCreatesLeavesNoOrphans(t *testing.T) {
	db, cleanup := testutils.SetupPostgresForIntegration()
	defer cleanup()

	repos := repository.NewRepositories(db)
	env := &testEnv{svc: application.New(repos, nil, nil), repos: repos}
	pt := env.projectType(t, "Audit "+t.Name())
	p := env.project(t, "P1", pt)
	tpl := env.template(t, "Checklist", pt, nil)

	const creators = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		created   int
		deleteErr error
	)
	wg.Add(creators + 1)
	for i := 0; i < creators; i++ {
		go func() {
			defer wg.Done()
			_, err := env.svc.Submission.Create(agentCtx(), submission.CreateSubmissionDTO{
				ProjectID: p.ID, ReportTemplateID: tpl.ID,
			})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				created++
				return
			}
			assert.ErrorIs(t, err, application.ErrNotFound)
		}()
	}
	go func() {
		defer wg.Done()
		err := env.svc.Template.Delete(adminCtx(), tpl.ID)
		mu.Lock()
		deleteErr = err
		mu.Unlock()
	}()
	wg.Wait()

	remaining, err := repos.Submission.CountByTemplate(adminCtx(), tpl.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(created), remaining)

	_, getErr := env.svc.Template.Get(adminCtx(), tpl.ID)
	if deleteErr == nil {
		assert.ErrorIs(t, getErr, application.ErrNotFound)
		assert.Zero(t, remaining, "no report may outlive its template")
	} else {
		assert.ErrorIs(t, deleteErr, application.ErrConflict)
		assert.NoError(t, getErr)
		assert.Positive(t, remaining)
	}
}

func TestProjectTypeDeleteRacingTemplateCreates(t *testing.T) {
	db, cleanup := testutils.SetupPostgresForIntegration()
	defer cleanup()

	repos := repository.NewRepositories(db)
	env := &testEnv{svc: application.New(repos, nil, nil), repos: repos}
	pt := env.projectType(t, "Audit "+t.Name())

	const creators = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		created   int
		deleteErr error
	)
	wg.Add(creators + 1)
	for i := 0; i < creators; i++ {
		go func(i int) {
			defer wg.Done()
			_, err := env.svc.Template.Create(adminCtx(), reporttemplate.CreateTemplateDTO{
				Name:          "Checklist " + string(rune('A'+i)),
				ProjectTypeID: pt.ID,
				Sections:      checklistSections(),
			})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				created++
				return
			}
			assert.ErrorIs(t, err, application.ErrNotFound)
		}(i)
	}
	go func() {
		defer wg.Done()
		err := env.svc.ProjectType.Delete(adminCtx(), pt.ID)
		mu.Lock()
		deleteErr = err
		mu.Unlock()
	}()
	wg.Wait()

	remaining, err := repos.Template.CountByProjectType(adminCtx(), pt.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(created), remaining)
	if deleteErr == nil {
		assert.Zero(t, remaining, "no template may outlive its project type")
	} else {
		assert.ErrorIs(t, deleteErr, application.ErrConflict)
		assert.Positive(t, remaining)
	}
}

func TestForeignKeysRestrictDirectDeletes(t *testing.T) {
	db, cleanup := testutils.SetupPostgresForIntegration()
	defer cleanup()

	repos := repository.NewRepositories(db)
	env := &testEnv{svc: application.New(repos, nil, nil), repos: repos}
	pt := env.projectType(t, "Audit "+t.Name())
	p := env.project(t, "P1", pt)
	tpl := env.template(t, "Checklist", pt, nil)
	_, err := env.svc.Submission.Create(agentCtx(), submission.CreateSubmissionDTO{ProjectID: p.ID, ReportTemplateID: tpl.ID})
	require.NoError(t, err)

	// Bypassing the service checks still cannot orphan children.
	assert.Error(t, repos.Template.Delete(adminCtx(), tpl.ID))
	assert.Error(t, repos.ProjectType.Delete(adminCtx(), pt.ID))
}
