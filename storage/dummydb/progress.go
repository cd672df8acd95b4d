package dummydb

import (
	"context"

	"github.com/nabha-edu/shiksha/core/progress"
)

type progressRepository struct {
	db *progressTable
}

var _ progress.Repository = (*progressRepository)(nil) // interface compliance check

func NewProgressRepository(db *DB) progress.Repository {
	return &progressRepository{db: db.progress}
}

// UpsertRecord holds the table lock across lookup and write, matching the
// single-operation atomicity the production store provides.
func (repo *progressRepository) UpsertRecord(_ context.Context, rec progress.Record) (progress.Record, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	for _, existing := range repo.db.table {
		if existing.StudentID != rec.StudentID {
			continue
		}
		if existing.LessonID != rec.LessonID || existing.ModuleID != rec.ModuleID {
			continue
		}
		existing.CompletionPercentage = rec.CompletionPercentage
		existing.TimeSpent = rec.TimeSpent
		existing.LastAccessed = rec.LastAccessed
		return *existing, nil
	}

	repo.db.table[rec.ID] = &rec
	return rec, nil
}

func (repo *progressRepository) FilterRecords(_ context.Context, filter progress.QueryFilter) ([]progress.Record, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var recs []progress.Record
	for _, rec := range repo.db.table {
		if filter.StudentID != "" && rec.StudentID != filter.StudentID {
			continue
		}
		if filter.StudentIDs != nil && !containsString(filter.StudentIDs, rec.StudentID) {
			continue
		}
		recs = append(recs, *rec)
	}
	return recs, nil
}
