package database

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"
)

// setupTestDB creates an in-memory database with migrations applied.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	cfg := Config{
		Path:            ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError, // Quiet during tests
	}))

	db, err := Open(cfg, logger)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := setupTestDB(t)

	// Second run should apply nothing.
	applied, err := db.Migrate(context.Background())
	if err != nil {
		t.Fatalf("second Migrate() failed: %v", err)
	}
	if applied != 0 {
		t.Errorf("second Migrate() applied %d migrations, want 0", applied)
	}
}

func TestHealth(t *testing.T) {
	db := setupTestDB(t)

	if err := db.Health(context.Background()); err != nil {
		t.Errorf("Health() = %v, want nil", err)
	}
}

func TestModule_IsValid(t *testing.T) {
	for _, m := range ValidModules() {
		if !m.IsValid() {
			t.Errorf("Module(%q).IsValid() = false, want true", m)
		}
	}
	if Module("babylonian").IsValid() {
		t.Error(`Module("babylonian").IsValid() = true, want false`)
	}
	if Module("").IsValid() {
		t.Error(`Module("").IsValid() = true, want false`)
	}
}

func TestCreateProgress(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	notes := "finished the leap year quiz"
	p, err := db.CreateProgress(ctx, "user-1", ModuleHebrew, &notes)
	if err != nil {
		t.Fatalf("CreateProgress() failed: %v", err)
	}

	if p.ID == 0 {
		t.Error("CreateProgress() returned zero ID")
	}
	if p.UserID != "user-1" {
		t.Errorf("UserID = %q, want %q", p.UserID, "user-1")
	}
	if p.Module != ModuleHebrew {
		t.Errorf("Module = %q, want %q", p.Module, ModuleHebrew)
	}
	if p.Notes == nil || *p.Notes != notes {
		t.Errorf("Notes = %v, want %q", p.Notes, notes)
	}
	if p.CompletedAt.IsZero() {
		t.Error("CompletedAt is zero")
	}
}

func TestCreateProgress_Duplicate(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if _, err := db.CreateProgress(ctx, "user-1", ModuleIslamic, nil); err != nil {
		t.Fatalf("first CreateProgress() failed: %v", err)
	}

	_, err := db.CreateProgress(ctx, "user-1", ModuleIslamic, nil)
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("duplicate CreateProgress() error = %v, want ErrDuplicate", err)
	}

	// A different user completing the same module is fine.
	if _, err := db.CreateProgress(ctx, "user-2", ModuleIslamic, nil); err != nil {
		t.Errorf("CreateProgress() for second user failed: %v", err)
	}
}

func TestGetProgressByUser(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	for _, m := range []Module{ModuleGregorian, ModuleHebrew, ModuleHindu} {
		if _, err := db.CreateProgress(ctx, "user-1", m, nil); err != nil {
			t.Fatalf("CreateProgress(%s) failed: %v", m, err)
		}
	}
	if _, err := db.CreateProgress(ctx, "user-2", ModuleMaya, nil); err != nil {
		t.Fatalf("CreateProgress for user-2 failed: %v", err)
	}

	progress, err := db.GetProgressByUser(ctx, "user-1", 50, 0)
	if err != nil {
		t.Fatalf("GetProgressByUser() failed: %v", err)
	}
	if len(progress) != 3 {
		t.Errorf("got %d records, want 3", len(progress))
	}
	for _, p := range progress {
		if p.UserID != "user-1" {
			t.Errorf("record %d belongs to %q, want user-1", p.ID, p.UserID)
		}
	}

	// Pagination
	page, err := db.GetProgressByUser(ctx, "user-1", 2, 0)
	if err != nil {
		t.Fatalf("GetProgressByUser() with limit failed: %v", err)
	}
	if len(page) != 2 {
		t.Errorf("limited query returned %d records, want 2", len(page))
	}

	// Unknown user gets an empty slice, not an error
	empty, err := db.GetProgressByUser(ctx, "nobody", 50, 0)
	if err != nil {
		t.Fatalf("GetProgressByUser() for unknown user failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("unknown user returned %d records, want 0", len(empty))
	}
}

func TestDeleteProgress(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	p, err := db.CreateProgress(ctx, "user-1", ModuleJulian, nil)
	if err != nil {
		t.Fatalf("CreateProgress() failed: %v", err)
	}

	// Another user cannot delete it
	if err := db.DeleteProgress(ctx, p.ID, "user-2"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteProgress() by wrong user error = %v, want ErrNotFound", err)
	}

	if err := db.DeleteProgress(ctx, p.ID, "user-1"); err != nil {
		t.Errorf("DeleteProgress() failed: %v", err)
	}

	// Already gone
	if err := db.DeleteProgress(ctx, p.ID, "user-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteProgress() error = %v, want ErrNotFound", err)
	}
}

func TestGetProgressStats(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	stats, err := db.GetProgressStats(ctx, "user-1")
	if err != nil {
		t.Fatalf("GetProgressStats() failed: %v", err)
	}
	if stats.CompletedModules != 0 {
		t.Errorf("CompletedModules = %d, want 0", stats.CompletedModules)
	}
	if stats.TotalModules != len(ValidModules()) {
		t.Errorf("TotalModules = %d, want %d", stats.TotalModules, len(ValidModules()))
	}

	for _, m := range []Module{ModuleGregorian, ModuleHebrew, ModuleIslamic} {
		if _, err := db.CreateProgress(ctx, "user-1", m, nil); err != nil {
			t.Fatalf("CreateProgress(%s) failed: %v", m, err)
		}
	}

	stats, err = db.GetProgressStats(ctx, "user-1")
	if err != nil {
		t.Fatalf("GetProgressStats() failed: %v", err)
	}
	if stats.CompletedModules != 3 {
		t.Errorf("CompletedModules = %d, want 3", stats.CompletedModules)
	}
	want := float64(3) / float64(len(ValidModules())) * 100
	if stats.CompletionPercent != want {
		t.Errorf("CompletionPercent = %f, want %f", stats.CompletionPercent, want)
	}
}
