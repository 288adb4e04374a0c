package repository_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/mvtien/studybuddy/internal/model"
	"github.com/mvtien/studybuddy/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named in-memory database keeps each test isolated while letting
	// gorm's connection pool see the same data.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.ScoreEntry{},
		&model.ProgressSummary{},
		&model.BadgeAward{},
		&model.QuizArchive{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func TestLoadUnknownLearner(t *testing.T) {
	repo := repository.NewProgressRepository(newTestDB(t))

	progress, err := repo.Load("nobody")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if progress.LearnerID != "nobody" {
		t.Errorf("expected learner id %q, got %q", "nobody", progress.LearnerID)
	}
	if progress.Summary.CorrectTotal != 0 || progress.Summary.WrongTotal != 0 {
		t.Errorf("expected zero totals, got %+v", progress.Summary)
	}
	if len(progress.History) != 0 || len(progress.Badges) != 0 {
		t.Errorf("expected empty history and badges, got %d/%d", len(progress.History), len(progress.Badges))
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	repo := repository.NewProgressRepository(newTestDB(t))
	now := time.Now()

	progress := &model.LearnerProgress{
		LearnerID: "alice",
		Summary:   model.ProgressSummary{LearnerID: "alice", CorrectTotal: 4, WrongTotal: 1},
		History:   []model.ScoreEntry{{Percentage: 80, TakenAt: now}},
		Badges:    []model.BadgeAward{{Label: "First Quiz Completed", AwardedAt: now}},
	}
	if err := repo.Save(progress); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	loaded, err := repo.Load("alice")
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if loaded.Summary.CorrectTotal != 4 || loaded.Summary.WrongTotal != 1 {
		t.Errorf("unexpected totals: %+v", loaded.Summary)
	}
	if len(loaded.History) != 1 || loaded.History[0].Percentage != 80 {
		t.Errorf("unexpected history: %+v", loaded.History)
	}
	if len(loaded.Badges) != 1 || loaded.Badges[0].Label != "First Quiz Completed" {
		t.Errorf("unexpected badges: %+v", loaded.Badges)
	}
}

func TestSaveIsAppendOnly(t *testing.T) {
	repo := repository.NewProgressRepository(newTestDB(t))
	base := time.Now().Add(-time.Hour)

	progress := &model.LearnerProgress{
		LearnerID: "bob",
		Summary:   model.ProgressSummary{LearnerID: "bob", CorrectTotal: 1, WrongTotal: 4},
		History:   []model.ScoreEntry{{Percentage: 20, TakenAt: base}},
	}
	if err := repo.Save(progress); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	loaded, err := repo.Load("bob")
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}

	// An in-memory edit of an already persisted entry must not reach the
	// store on the next save; only the fresh entry is written.
	loaded.History[0].Percentage = 99
	loaded.History = append(loaded.History, model.ScoreEntry{Percentage: 60, TakenAt: base.Add(time.Hour)})
	loaded.Summary.CorrectTotal = 4
	loaded.Summary.WrongTotal = 6
	if err := repo.Save(loaded); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	final, err := repo.Load("bob")
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if len(final.History) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(final.History))
	}
	if final.History[0].Percentage != 20 {
		t.Errorf("first history entry was rewritten: %+v", final.History[0])
	}
	if final.History[1].Percentage != 60 {
		t.Errorf("unexpected second history entry: %+v", final.History[1])
	}
}

func TestSaveUpsertsSummary(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewProgressRepository(db)

	first := &model.LearnerProgress{
		LearnerID: "carol",
		Summary:   model.ProgressSummary{LearnerID: "carol", CorrectTotal: 2, WrongTotal: 3},
	}
	if err := repo.Save(first); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	// A second save from a fresh aggregate must update the existing row,
	// not insert a duplicate.
	second := &model.LearnerProgress{
		LearnerID: "carol",
		Summary:   model.ProgressSummary{LearnerID: "carol", CorrectTotal: 5, WrongTotal: 5},
	}
	if err := repo.Save(second); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	var count int64
	if err := db.Model(&model.ProgressSummary{}).Where("learner_id = ?", "carol").Count(&count).Error; err != nil {
		t.Fatalf("unexpected count error: %v", err)
	}
	if count != 1 {
		t.Errorf("expected a single summary row, got %d", count)
	}

	loaded, err := repo.Load("carol")
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if loaded.Summary.CorrectTotal != 5 || loaded.Summary.WrongTotal != 5 {
		t.Errorf("summary was not updated: %+v", loaded.Summary)
	}
}

func TestArchivesNewestFirst(t *testing.T) {
	repo := repository.NewProgressRepository(newTestDB(t))
	base := time.Now().Add(-2 * time.Hour)

	older := &model.QuizArchive{LearnerID: "dave", Topic: "Algebra", Score: 2, Total: 5, TakenAt: base}
	newer := &model.QuizArchive{LearnerID: "dave", Topic: "Chemistry", Score: 4, Total: 5, TakenAt: base.Add(time.Hour)}
	for _, a := range []*model.QuizArchive{older, newer} {
		if err := repo.ArchiveQuiz(a); err != nil {
			t.Fatalf("unexpected archive error: %v", err)
		}
	}

	archives, err := repo.Archives("dave")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(archives) != 2 {
		t.Fatalf("expected 2 archives, got %d", len(archives))
	}
	if archives[0].Topic != "Chemistry" || archives[1].Topic != "Algebra" {
		t.Errorf("archives not ordered newest first: %v, %v", archives[0].Topic, archives[1].Topic)
	}
}

func TestResetErasesEverything(t *testing.T) {
	repo := repository.NewProgressRepository(newTestDB(t))
	now := time.Now()

	progress := &model.LearnerProgress{
		LearnerID: "erin",
		Summary:   model.ProgressSummary{LearnerID: "erin", CorrectTotal: 3, WrongTotal: 2},
		History:   []model.ScoreEntry{{Percentage: 60, TakenAt: now}},
		Badges:    []model.BadgeAward{{Label: "First Quiz Completed", AwardedAt: now}},
	}
	if err := repo.Save(progress); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}
	if err := repo.ArchiveQuiz(&model.QuizArchive{LearnerID: "erin", Topic: "Physics", Score: 3, Total: 5, TakenAt: now}); err != nil {
		t.Fatalf("unexpected archive error: %v", err)
	}

	if err := repo.Reset("erin"); err != nil {
		t.Fatalf("unexpected reset error: %v", err)
	}

	loaded, err := repo.Load("erin")
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if loaded.Summary.CorrectTotal != 0 || len(loaded.History) != 0 || len(loaded.Badges) != 0 {
		t.Errorf("expected empty aggregate after reset, got %+v", loaded)
	}

	archives, err := repo.Archives("erin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(archives) != 0 {
		t.Errorf("expected no archives after reset, got %d", len(archives))
	}
}

func TestResetLeavesOtherLearnersAlone(t *testing.T) {
	repo := repository.NewProgressRepository(newTestDB(t))
	now := time.Now()

	for _, learner := range []string{"frank", "grace"} {
		progress := &model.LearnerProgress{
			LearnerID: learner,
			Summary:   model.ProgressSummary{LearnerID: learner, CorrectTotal: 1},
			History:   []model.ScoreEntry{{Percentage: 100, TakenAt: now}},
		}
		if err := repo.Save(progress); err != nil {
			t.Fatalf("unexpected save error for %s: %v", learner, err)
		}
	}

	if err := repo.Reset("frank"); err != nil {
		t.Fatalf("unexpected reset error: %v", err)
	}

	loaded, err := repo.Load("grace")
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if len(loaded.History) != 1 || loaded.Summary.CorrectTotal != 1 {
		t.Errorf("grace's progress was affected by frank's reset: %+v", loaded)
	}
}
