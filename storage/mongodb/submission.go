package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nabha-edu/shiksha/core/submission"
)

type submissionRepository struct {
	col *mongo.Collection
}

var _ submission.Repository = (*submissionRepository)(nil) // interface compliance check

func NewSubmissionRepository(db *mongo.Database) submission.Repository {
	return &submissionRepository{col: db.Collection(submissionsCollection)}
}

func (repo *submissionRepository) CreateSubmission(ctx context.Context, sub submission.Submission) (submission.Submission, error) {
	if _, err := repo.col.InsertOne(ctx, sub); err != nil {
		return submission.Submission{}, errors.Wrap(err, "inserting submission")
	}
	return sub, nil
}

func (repo *submissionRepository) FilterSubmissions(ctx context.Context, filter submission.QueryFilter) ([]submission.Submission, error) {
	query := bson.M{}
	if filter.AssignmentID != "" {
		query["assignment_id"] = filter.AssignmentID
	}
	if filter.StudentID != "" {
		query["student_id"] = filter.StudentID
	}
	if filter.StudentIDs != nil {
		query["student_id"] = bson.M{"$in": filter.StudentIDs}
	}

	cursor, err := repo.col.Find(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "filtering submissions")
	}
	var subs []submission.Submission
	if err = cursor.All(ctx, &subs); err != nil {
		return nil, errors.Wrap(err, "decoding submissions")
	}
	return subs, nil
}

func (repo *submissionRepository) GradeSubmission(ctx context.Context, id string, marks int, feedback string) (submission.Submission, error) {
	update := bson.M{"$set": bson.M{"marks": marks, "feedback": feedback}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var sub submission.Submission
	if err := repo.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&sub); err != nil {
		if err == mongo.ErrNoDocuments {
			return submission.Submission{}, submission.ErrNotFound
		}
		return submission.Submission{}, errors.Wrap(err, "grading submission")
	}
	return sub, nil
}
