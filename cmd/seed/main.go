// Command seed loads project types, report templates and projects from a YAML
// fixture so a fresh database has something to submit reports against.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/report-hub/internal/api/middleware"
	"github.com/linskybing/report-hub/internal/application"
	"github.com/linskybing/report-hub/internal/config"
	"github.com/linskybing/report-hub/internal/config/db"
	"github.com/linskybing/report-hub/internal/migrations"
	"github.com/linskybing/report-hub/internal/notify"
	"github.com/linskybing/report-hub/internal/repository"
	"github.com/linskybing/report-hub/pkg/types"
)

func main() {
	file := flag.String("file", "seed.yaml", "fixture to load")
	token := flag.String("token-for", "", "print an admin token for this user id after seeding")
	flag.Parse()

	config.LoadConfig()
	middleware.Init()
	db.Init()
	if err := migrations.Run(db.DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	raw, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *file, err)
	}
	fx, err := parseFixture(raw)
	if err != nil {
		log.Fatalf("Failed to parse %s: %v", *file, err)
	}

	repos := repository.NewRepositories(db.DB)
	svc := application.New(repos, notify.Nop{}, nil)
	ctx := types.WithCaller(context.Background(), types.Caller{
		Claims: &types.Claims{UserID: "seed", Role: types.RoleAdmin},
	})
	if err := load(ctx, repos, svc, fx); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	if *token != "" {
		t, err := middleware.GenerateToken(*token, types.RoleAdmin, 24*time.Hour)
		if err != nil {
			log.Fatalf("Failed to sign token: %v", err)
		}
		fmt.Println(t)
	}
}

// load is idempotent on names: entries that already exist are skipped.
func load(ctx context.Context, repos *repository.Repos, svc *application.Services, fx *fixture) error {
	for _, pt := range fx.ProjectTypes {
		created, err := svc.ProjectType.Create(ctx, pt.dto())
		switch {
		case errors.Is(err, application.ErrConflict):
			log.Printf("[seed] project type %q exists, skipping", pt.Name)
			continue
		case err != nil:
			return fmt.Errorf("project type %q: %w", pt.Name, err)
		}
		log.Printf("[seed] project type %q -> %s", pt.Name, created.ID)
	}

	byName := make(map[string]uuid.UUID)
	resolve := func(name string) (uuid.UUID, error) {
		if id, ok := byName[name]; ok {
			return id, nil
		}
		pt, err := repos.ProjectType.GetByName(ctx, name)
		if err != nil {
			return uuid.Nil, fmt.Errorf("project type %q: %w", name, err)
		}
		byName[name] = pt.ID
		return pt.ID, nil
	}

	for _, tpl := range fx.Templates {
		ptID, err := resolve(tpl.ProjectType)
		if err != nil {
			return fmt.Errorf("template %q: %w", tpl.Name, err)
		}
		in, err := tpl.dto(ptID)
		if err != nil {
			return fmt.Errorf("template %q: %w", tpl.Name, err)
		}
		created, err := svc.Template.Create(ctx, in)
		switch {
		case errors.Is(err, application.ErrConflict):
			log.Printf("[seed] template %q exists, skipping", tpl.Name)
			continue
		case err != nil:
			return fmt.Errorf("template %q: %w", tpl.Name, err)
		}
		log.Printf("[seed] template %q -> %s", tpl.Name, created.ID)
	}

	for _, p := range fx.Projects {
		in := p.CreateProjectDTO
		if p.ProjectType != "" {
			ptID, err := resolve(p.ProjectType)
			if err != nil {
				return fmt.Errorf("project %q: %w", p.Name, err)
			}
			in.ProjectTypeID = &ptID
		}
		created, err := svc.Project.Create(ctx, in)
		if err != nil {
			return fmt.Errorf("project %q: %w", p.Name, err)
		}
		log.Printf("[seed] project %q -> %s", p.Name, created.ID)
	}
	return nil
}
