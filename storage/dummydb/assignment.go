package dummydb

import (
	"context"

	"github.com/nabha-edu/shiksha/core/assignment"
)

type assignmentRepository struct {
	db *assignmentTable
}

var _ assignment.Repository = (*assignmentRepository)(nil) // interface compliance check

func NewAssignmentRepository(db *DB) assignment.Repository {
	return &assignmentRepository{db: db.assignment}
}

func (repo *assignmentRepository) CreateAssignment(_ context.Context, asg assignment.Assignment) (assignment.Assignment, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table[asg.ID] = &asg
	return asg, nil
}

func (repo *assignmentRepository) FilterAssignments(_ context.Context, filter assignment.QueryFilter) ([]assignment.Assignment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var assignments []assignment.Assignment
	for _, asg := range repo.db.table {
		if filter.TeacherID != "" && asg.TeacherID != filter.TeacherID {
			continue
		}
		if filter.ClassName != "" && asg.ClassName != filter.ClassName {
			continue
		}
		assignments = append(assignments, *asg)
	}
	return assignments, nil
}
