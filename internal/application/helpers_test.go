package application_test

import (
	"context"
	"sync"
	"testing"

	"github.com/linskybing/report-hub/internal/application"
	"github.com/linskybing/report-hub/internal/domain/form"
	"github.com/linskybing/report-hub/internal/domain/project"
	"github.com/linskybing/report-hub/internal/domain/projecttype"
	"github.com/linskybing/report-hub/internal/domain/reporttemplate"
	"github.com/linskybing/report-hub/internal/notify"
	"github.com/linskybing/report-hub/internal/repository"
	"github.com/linskybing/report-hub/internal/storage"
	"github.com/linskybing/report-hub/internal/testutils"
	"github.com/linskybing/report-hub/pkg/types"
	"github.com/stretchr/testify/require"
)

type recordedEvent struct {
	Event   notify.Event
	Payload any
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (n *recordingNotifier) Notify(event notify.Event, payload any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, recordedEvent{Event: event, Payload: payload})
}

func (n *recordingNotifier) Events() []notify.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]notify.Event, 0, len(n.events))
	for _, e := range n.events {
		out = append(out, e.Event)
	}
	return out
}

type testEnv struct {
	svc      *application.Services
	repos    *repository.Repos
	notifier *recordingNotifier
}

func newTestEnv(t *testing.T, store storage.ObjectStore) *testEnv {
	t.Helper()
	repos := repository.NewRepositories(testutils.NewSQLiteDB(t))
	n := &recordingNotifier{}
	return &testEnv{
		svc:      application.New(repos, n, store),
		repos:    repos,
		notifier: n,
	}
}

func agentCtx() context.Context {
	return types.WithCaller(context.Background(), types.Caller{
		Claims:    &types.Claims{UserID: "agent-7", Role: types.RoleAgent},
		IP:        "10.0.0.7",
		UserAgent: "go-test",
	})
}

func adminCtx() context.Context {
	return types.WithCaller(context.Background(), types.Caller{
		Claims: &types.Claims{UserID: "admin-1", Role: types.RoleAdmin},
		IP:     "10.0.0.1",
	})
}

// checklistSections has one optional text field, one required dropdown and
// an image field.
func checklistSections() form.Sections {
	return form.Sections{
		{ID: "s1", Name: "General", Order: 1, Fields: []form.FormField{
			{ID: "f1", Label: "Notes", Order: 1, CategoryID: "c1", Spec: form.TextField{}},
			{ID: "f2", Label: "Weather", Required: true, Order: 2, CategoryID: "c1",
				Spec: form.DropdownField{Options: []string{"sunny", "rain"}}},
		}},
		{ID: "s2", Name: "Photos", Order: 2, Fields: []form.FormField{
			{ID: "p1", Label: "Front", Order: 1, CategoryID: "c2", Spec: form.ImageField{}},
		}},
	}
}

func (e *testEnv) projectType(t *testing.T, name string) *projecttype.ProjectType {
	t.Helper()
	pt, err := e.svc.ProjectType.Create(adminCtx(), projecttype.CreateProjectTypeDTO{Name: name})
	require.NoError(t, err)
	return pt
}

func (e *testEnv) project(t *testing.T, name string, pt *projecttype.ProjectType) *project.Project {
	t.Helper()
	p, err := e.svc.Project.Create(adminCtx(), project.CreateProjectDTO{Name: name, ProjectTypeID: &pt.ID})
	require.NoError(t, err)
	return p
}

func (e *testEnv) template(t *testing.T, name string, pt *projecttype.ProjectType, capacity *int) *reporttemplate.ReportTemplate {
	t.Helper()
	tpl, err := e.svc.Template.Create(adminCtx(), reporttemplate.CreateTemplateDTO{
		Name:                name,
		ProjectTypeID:       pt.ID,
		NumberOfSubmissions: capacity,
		Sections:            checklistSections(),
	})
	require.NoError(t, err)
	return tpl
}

func intPtr(i int) *int { return &i }

func strPtr(s string) *string { return &s }
