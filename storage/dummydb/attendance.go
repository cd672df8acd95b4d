package dummydb

import (
	"context"

	"github.com/nabha-edu/shiksha/core/attendance"
)

type attendanceRepository struct {
	db *attendanceTable
}

var _ attendance.Repository = (*attendanceRepository)(nil) // interface compliance check

func NewAttendanceRepository(db *DB) attendance.Repository {
	return &attendanceRepository{db: db.attendance}
}

func (repo *attendanceRepository) CreateRecords(_ context.Context, recs []attendance.Record) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	for i := range recs {
		rec := recs[i]
		repo.db.table[rec.ID] = &rec
	}
	return nil
}

func (repo *attendanceRepository) FilterRecords(_ context.Context, filter attendance.QueryFilter) ([]attendance.Record, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var recs []attendance.Record
	for _, rec := range repo.db.table {
		if filter.StudentID != "" && rec.StudentID != filter.StudentID {
			continue
		}
		if filter.StudentIDs != nil && !containsString(filter.StudentIDs, rec.StudentID) {
			continue
		}
		if filter.ClassName != "" && rec.ClassName != filter.ClassName {
			continue
		}
		if filter.Date != "" && rec.Date != filter.Date {
			continue
		}
		recs = append(recs, *rec)
	}
	return recs, nil
}
