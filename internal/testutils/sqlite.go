package testutils

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/linskybing/report-hub/internal/migrations"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_]`)

// NewSQLiteDB opens a private in-memory database with every migration
// applied. The single connection keeps the shared-cache database alive and
// serializes writers.
func NewSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()

	name := unsafeChars.ReplaceAllString(t.Name(), "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sqlite handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := migrations.Run(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
