//go:build integration

package application_test

import (
	"sync"
	"testing"

	"github.com/linskybing/report-hub/internal/application"
	"github.com/linskybing/report-hub/internal/domain/submission"
	"github.com/linskybing/report-hub/internal/repository"
	"github.com/linskybing/report-hub/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcurrentCreatesRespectCap(t *testing.T) {
	db, cleanup := testutils.SetupPostgresForIntegration()
	defer cleanup()

	n := &recordingNotifier{}
	env := &testEnv{
		svc:      application.New(repository.NewRepositories(db), n, nil),
		notifier: n,
	}
	pt := env.projectType(t, "Audit "+t.Name())
	p := env.project(t, "P1", pt)
	tpl := env.template(t, "Checklist", pt, intPtr(3))

	const workers = 12
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		created   int
		conflicts int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := env.svc.Submission.Create(agentCtx(), submission.CreateSubmissionDTO{
				ProjectID: p.ID, ReportTemplateID: tpl.ID,
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case assert.ErrorIs(t, err, application.ErrConflict):
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, created)
	assert.Equal(t, workers-3, conflicts)

	count, err := env.svc.Submission.ListByProjectAndStatus(agentCtx(), p.ID, submission.StatusDraft)
	require.NoError(t, err)
	assert.Len(t, count, 3)
}
