package testutils

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/report-hub/internal/api/middleware"
	"github.com/linskybing/report-hub/internal/api/routes"
	"github.com/linskybing/report-hub/internal/api/validate"
	"github.com/linskybing/report-hub/internal/application"
	"github.com/linskybing/report-hub/internal/config"
	"github.com/linskybing/report-hub/internal/notify"
	"github.com/linskybing/report-hub/internal/repository"
	"github.com/linskybing/report-hub/internal/storage"
	"github.com/linskybing/report-hub/pkg/types"
)

// TestServer is a fully wired router over an in-memory database.
type TestServer struct {
	Router   *gin.Engine
	Repos    *repository.Repos
	Services *application.Services
	Hub      *notify.Hub
}

func SetupRouter(t testing.TB, store storage.ObjectStore) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.JwtSecret = "test-secret"
	config.Issuer = "report-hub-test"
	middleware.Init()
	if err := validate.Register(); err != nil {
		t.Fatalf("register validators: %v", err)
	}

	repos := repository.NewRepositories(NewSQLiteDB(t))
	hub := notify.NewHub(func(*http.Request) bool { return true })
	svc := application.New(repos, notify.NewDispatcher(hub), store)

	r := gin.New()
	routes.RegisterRoutes(r, repos, svc, hub)
	return &TestServer{Router: r, Repos: repos, Services: svc, Hub: hub}
}

// Token returns an "Authorization" header value for the given identity.
func Token(t testing.TB, userID string, role types.Role) string {
	t.Helper()
	tok, err := middleware.GenerateToken(userID, role, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return "Bearer " + tok
}
