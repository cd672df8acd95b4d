package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nabha-edu/shiksha/core/attendance"
)

type attendanceRepository struct {
	col *mongo.Collection
}

var _ attendance.Repository = (*attendanceRepository)(nil) // interface compliance check

func NewAttendanceRepository(db *mongo.Database) attendance.Repository {
	return &attendanceRepository{col: db.Collection(attendanceCollection)}
}

func (repo *attendanceRepository) CreateRecords(ctx context.Context, recs []attendance.Record) error {
	docs := make([]interface{}, 0, len(recs))
	for _, rec := range recs {
		docs = append(docs, rec)
	}
	if _, err := repo.col.InsertMany(ctx, docs); err != nil {
		return errors.Wrap(err, "inserting attendance records")
	}
	return nil
}

func (repo *attendanceRepository) FilterRecords(ctx context.Context, filter attendance.QueryFilter) ([]attendance.Record, error) {
	query := bson.M{}
	if filter.StudentID != "" {
		query["student_id"] = filter.StudentID
	}
	if filter.StudentIDs != nil {
		query["student_id"] = bson.M{"$in": filter.StudentIDs}
	}
	if filter.ClassName != "" {
		query["class_name"] = filter.ClassName
	}
	if filter.Date != "" {
		query["date"] = filter.Date
	}

	cursor, err := repo.col.Find(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "filtering attendance records")
	}
	var recs []attendance.Record
	if err = cursor.All(ctx, &recs); err != nil {
		return nil, errors.Wrap(err, "decoding attendance records")
	}
	return recs, nil
}
