package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nabha-edu/shiksha/core/assignment"
)

type assignmentRepository struct {
	col *mongo.Collection
}

var _ assignment.Repository = (*assignmentRepository)(nil) // interface compliance check

func NewAssignmentRepository(db *mongo.Database) assignment.Repository {
	return &assignmentRepository{col: db.Collection(assignmentsCollection)}
}

func (repo *assignmentRepository) CreateAssignment(ctx context.Context, asg assignment.Assignment) (assignment.Assignment, error) {
	if _, err := repo.col.InsertOne(ctx, asg); err != nil {
		return assignment.Assignment{}, errors.Wrap(err, "inserting assignment")
	}
	return asg, nil
}

func (repo *assignmentRepository) FilterAssignments(ctx context.Context, filter assignment.QueryFilter) ([]assignment.Assignment, error) {
	query := bson.M{}
	if filter.TeacherID != "" {
		query["teacher_id"] = filter.TeacherID
	}
	if filter.ClassName != "" {
		query["class_name"] = filter.ClassName
	}

	cursor, err := repo.col.Find(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "filtering assignments")
	}
	var assignments []assignment.Assignment
	if err = cursor.All(ctx, &assignments); err != nil {
		return nil, errors.Wrap(err, "decoding assignments")
	}
	return assignments, nil
}
