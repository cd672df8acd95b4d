package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nabha-edu/shiksha/core/progress"
)

type progressRepository struct {
	col *mongo.Collection
}

var _ progress.Repository = (*progressRepository)(nil) // interface compliance check

func NewProgressRepository(db *mongo.Database) progress.Repository {
	return &progressRepository{col: db.Collection(progressCollection)}
}

// UpsertRecord is a single conditional write: the store either updates the
// live record for the (student, lesson|module) key or inserts rec, atomically.
func (repo *progressRepository) UpsertRecord(ctx context.Context, rec progress.Record) (progress.Record, error) {
	filter := bson.M{"student_id": rec.StudentID}
	if rec.LessonID != "" {
		filter["lesson_id"] = rec.LessonID
	} else {
		filter["module_id"] = rec.ModuleID
	}

	update := bson.M{
		"$set": bson.M{
			"completion_percentage": rec.CompletionPercentage,
			"time_spent":            rec.TimeSpent,
			"last_accessed":         rec.LastAccessed,
		},
		"$setOnInsert": bson.M{"_id": rec.ID},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var out progress.Record
	if err := repo.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&out); err != nil {
		return progress.Record{}, errors.Wrap(err, "upserting progress record")
	}
	return out, nil
}

func (repo *progressRepository) FilterRecords(ctx context.Context, filter progress.QueryFilter) ([]progress.Record, error) {
	query := bson.M{}
	if filter.StudentID != "" {
		query["student_id"] = filter.StudentID
	}
	if filter.StudentIDs != nil {
		query["student_id"] = bson.M{"$in": filter.StudentIDs}
	}

	cursor, err := repo.col.Find(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "filtering progress records")
	}
	var recs []progress.Record
	if err = cursor.All(ctx, &recs); err != nil {
		return nil, errors.Wrap(err, "decoding progress records")
	}
	return recs, nil
}
