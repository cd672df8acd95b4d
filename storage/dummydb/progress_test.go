package dummydb

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/nabha-edu/shiksha/core/progress"
)

func TestProgressRepository_UpsertRecord(t *testing.T) {
	db, _ := Open()
	repo := NewProgressRepository(db)
	ctx := context.Background()

	rec := func(studentID, lessonID, moduleID string, completion float64) progress.Record {
		return progress.Record{
			ID:                   uuid.New().String(),
			StudentID:            studentID,
			LessonID:             lessonID,
			ModuleID:             moduleID,
			CompletionPercentage: completion,
			LastAccessed:         time.Now().UTC(),
		}
	}

	first, err := repo.UpsertRecord(ctx, rec("s1", "l1", "", 25))
	if err != nil {
		t.Fatalf("UpsertRecord() error = %v", err)
	}

	t.Run("same key updates in place", func(t *testing.T) {
		updated, err := repo.UpsertRecord(ctx, rec("s1", "l1", "", 75))
		if err != nil {
			t.Fatalf("UpsertRecord() error = %v", err)
		}
		if updated.ID != first.ID {
			t.Errorf("ID = %s, want existing %s", updated.ID, first.ID)
		}
		if updated.CompletionPercentage != 75 {
			t.Errorf("CompletionPercentage = %v, want 75", updated.CompletionPercentage)
		}
	})

	t.Run("different target inserts", func(t *testing.T) {
		other, err := repo.UpsertRecord(ctx, rec("s1", "", "m1", 10))
		if err != nil {
			t.Fatalf("UpsertRecord() error = %v", err)
		}
		if other.ID == first.ID {
			t.Error("module record reused the lesson record")
		}
	})

	t.Run("different student inserts", func(t *testing.T) {
		other, err := repo.UpsertRecord(ctx, rec("s2", "l1", "", 10))
		if err != nil {
			t.Fatalf("UpsertRecord() error = %v", err)
		}
		if other.ID == first.ID {
			t.Error("second student's record reused the first's")
		}
	})

	t.Run("concurrent upserts never duplicate", func(t *testing.T) {
		db, _ := Open()
		repo := NewProgressRepository(db)

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				if _, err := repo.UpsertRecord(ctx, rec("s1", "l1", "", float64(i))); err != nil {
					t.Errorf("UpsertRecord() error = %v", err)
				}
			}(i)
		}
		wg.Wait()

		recs, err := repo.FilterRecords(ctx, progress.QueryFilter{StudentID: "s1"})
		if err != nil {
			t.Fatalf("FilterRecords() error = %v", err)
		}
		if len(recs) != 1 {
			t.Errorf("len(records) = %d, want 1", len(recs))
		}
	})
}
