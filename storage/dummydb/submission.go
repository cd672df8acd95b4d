package dummydb

import (
	"context"

	"github.com/nabha-edu/shiksha/core/submission"
)

type submissionRepository struct {
	db *submissionTable
}

var _ submission.Repository = (*submissionRepository)(nil) // interface compliance check

func NewSubmissionRepository(db *DB) submission.Repository {
	return &submissionRepository{db: db.submission}
}

func (repo *submissionRepository) CreateSubmission(_ context.Context, sub submission.Submission) (submission.Submission, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table[sub.ID] = &sub
	return sub, nil
}

func (repo *submissionRepository) FilterSubmissions(_ context.Context, filter submission.QueryFilter) ([]submission.Submission, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var subs []submission.Submission
	for _, sub := range repo.db.table {
		if filter.AssignmentID != "" && sub.AssignmentID != filter.AssignmentID {
			continue
		}
		if filter.StudentID != "" && sub.StudentID != filter.StudentID {
			continue
		}
		if filter.StudentIDs != nil && !containsString(filter.StudentIDs, sub.StudentID) {
			continue
		}
		subs = append(subs, *sub)
	}
	return subs, nil
}

func (repo *submissionRepository) GradeSubmission(_ context.Context, id string, marks int, feedback string) (submission.Submission, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	sub, ok := repo.db.table[id]
	if !ok {
		return submission.Submission{}, submission.ErrNotFound
	}
	sub.Marks = &marks
	sub.Feedback = &feedback
	return *sub, nil
}

func containsString(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
