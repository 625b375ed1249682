package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/linskybing/report-hub/internal/domain/project"
	"github.com/linskybing/report-hub/internal/domain/submission"
	"github.com/linskybing/report-hub/internal/testutils"
	"github.com/linskybing/report-hub/pkg/response"
	"github.com/linskybing/report-hub/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type client struct {
	t     *testing.T
	srv   *testutils.TestServer
	admin string
	agent string
}

func newClient(t *testing.T) *client {
	srv := testutils.SetupRouter(t, nil)
	return &client{
		t:     t,
		srv:   srv,
		admin: testutils.Token(t, "admin-1", types.RoleAdmin),
		agent: testutils.Token(t, "agent-7", types.RoleAgent),
	}
}

func (c *client) do(method, path, token string, body any) *httptest.ResponseRecorder {
	c.t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(c.t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	c.srv.Router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

type idOnly struct {
	ID     string            `json:"id"`
	Status submission.Status `json:"status"`
}

const checklistTemplate = `{
  "name": "Checklist",
  "project_type_id": "%s",
  "number_of_submissions": 1,
  "sections": [{"id":"s1","name":"General","order":1,"fields":[
    {"id":"f1","type":"text","label":"Notes","required":false,"order":1,"category_id":"c1"}
  ]}]
}`

func (c *client) seed() (projectID, templateID string) {
	c.t.Helper()
	w := c.do(http.MethodPost, "/project-types", c.admin, map[string]string{"name": "Audit"})
	require.Equal(c.t, http.StatusCreated, w.Code, w.Body.String())
	pt := decode[idOnly](c.t, w)

	w = c.do(http.MethodPost, "/report-templates", c.admin, fmt.Sprintf(checklistTemplate, pt.ID))
	require.Equal(c.t, http.StatusCreated, w.Code, w.Body.String())
	tpl := decode[idOnly](c.t, w)

	p, err := c.srv.Services.Project.Create(context.Background(), project.CreateProjectDTO{Name: "P1"})
	require.NoError(c.t, err)
	return p.ID.String(), tpl.ID
}

func TestReportLifecycleOverHTTP(t *testing.T) {
	c := newClient(t)
	projectID, templateID := c.seed()
	create := map[string]any{"project_id": projectID, "report_template_id": templateID}

	w := c.do(http.MethodPost, "/reports", c.agent, create)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	sub := decode[idOnly](t, w)
	assert.Equal(t, submission.StatusDraft, sub.Status)

	w = c.do(http.MethodPost, "/reports", c.agent, create)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, decode[response.ErrorResponse](t, w).Error, "maximum number of submissions reached")

	w = c.do(http.MethodPut, "/reports/"+sub.ID+"/submit", c.agent, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, submission.StatusSubmitted, decode[idOnly](t, w).Status)

	w = c.do(http.MethodPut, "/reports/"+sub.ID+"/approve", c.agent, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = c.do(http.MethodPut, "/reports/"+sub.ID+"/approve", c.admin, map[string]string{"comments": "ok"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	approved := decode[submission.ReportSubmission](t, w)
	assert.Equal(t, submission.StatusApproved, approved.Status)
	assert.NotNil(t, approved.ApprovedAt)
	require.NotNil(t, approved.ApprovalComments)
	assert.Equal(t, "ok", *approved.ApprovalComments)

	w = c.do(http.MethodDelete, "/reports/"+sub.ID, c.agent, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = c.do(http.MethodPut, "/reports/"+sub.ID+"/reject", c.admin, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = c.do(http.MethodGet, "/reports/statistics?project_id="+projectID, c.agent, nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode[submission.Statistics](t, w)
	assert.EqualValues(t, 1, stats.Total)
	assert.EqualValues(t, 1, stats.Approved)
	assert.EqualValues(t, 100, stats.CompletionRate)

	w = c.do(http.MethodGet, "/reports/"+sub.ID+"/history", c.agent, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var history []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	assert.Len(t, history, 3)

	w = c.do(http.MethodGet, "/reports/project/"+projectID+"/status/APPROVED", c.agent, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]idOnly](t, w), 1)

	w = c.do(http.MethodGet, "/reports?status=APPROVED&page=1&page_size=5", c.agent, nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decode[response.Page[idOnly]](t, w)
	assert.EqualValues(t, 1, page.Total)
	assert.Equal(t, 5, page.PageSize)
}

func TestRequestValidation(t *testing.T) {
	c := newClient(t)
	projectID, templateID := c.seed()

	w := c.do(http.MethodGet, "/reports", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = c.do(http.MethodGet, "/reports/not-a-uuid", c.agent, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = c.do(http.MethodGet, "/reports/status/ARCHIVED", c.agent, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = c.do(http.MethodPost, "/reports", c.agent, map[string]any{
		"project_id": projectID, "report_template_id": templateID, "status": "ARCHIVED",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = c.do(http.MethodPost, "/reports", c.agent, map[string]any{
		"project_id": projectID, "report_template_id": templateID, "status": "APPROVED",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, "a report cannot start approved")

	w = c.do(http.MethodPost, "/reports", c.agent, map[string]any{
		"project_id": projectID, "report_template_id": templateID,
		"report_data": []map[string]any{{"id": "s1", "data": []map[string]any{{"id": "f1", "value": "x", "type": "slider"}}}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = c.do(http.MethodPost, "/report-templates", c.agent, `{}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = c.do(http.MethodPost, "/report-templates", c.admin,
		`{"name":"X","project_type_id":"00000000-0000-0000-0000-000000000001","sections":[{"id":"s1","name":"A","fields":[{"id":"f","type":"slider","label":"L"}]}]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = c.do(http.MethodPost, "/report-templates", c.admin,
		`{"name":"X","project_type_id":"00000000-0000-0000-0000-000000000001","sections":[]}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = c.do(http.MethodGet, "/projects/"+projectID, c.agent, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTemplateEndpoints(t *testing.T) {
	c := newClient(t)
	_, templateID := c.seed()

	w := c.do(http.MethodGet, "/report-templates?project_type_id=bogus", c.agent, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = c.do(http.MethodGet, "/report-templates", c.agent, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode[response.Page[idOnly]](t, w).Total)

	w = c.do(http.MethodPut, "/report-templates/"+templateID, c.admin, map[string]any{"number_of_submissions": 0})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "number_of_submissions")

	w = c.do(http.MethodGet, "/report-templates/"+templateID+"/export", c.admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "Checklist_")

	w = c.do(http.MethodDelete, "/report-templates/"+templateID, c.admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = c.do(http.MethodGet, "/report-templates/"+templateID, c.agent, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestImageUploadWithoutStorage(t *testing.T) {
	c := newClient(t)
	projectID, templateID := c.seed()
	w := c.do(http.MethodPost, "/reports", c.agent, map[string]any{"project_id": projectID, "report_template_id": templateID})
	require.Equal(t, http.StatusCreated, w.Code)
	sub := decode[idOnly](t, w)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("section_id", "s1"))
	require.NoError(t, mw.WriteField("field_id", "f1"))
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="file"; filename="a.png"`)
	hdr.Set("Content-Type", "image/png")
	part, err := mw.CreatePart(hdr)
	require.NoError(t, err)
	_, _ = part.Write([]byte("\x89PNG"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/reports/"+sub.ID+"/images", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", c.agent)
	rec := httptest.NewRecorder()
	c.srv.Router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHealthz(t *testing.T) {
	c := newClient(t)
	w := c.do(http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
