package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nabha-edu/shiksha/core/lesson"
)

type lessonRepository struct {
	col *mongo.Collection
}

var _ lesson.Repository = (*lessonRepository)(nil) // interface compliance check

func NewLessonRepository(db *mongo.Database) lesson.Repository {
	return &lessonRepository{col: db.Collection(lessonsCollection)}
}

func (repo *lessonRepository) CreateLesson(ctx context.Context, les lesson.Lesson) (lesson.Lesson, error) {
	if _, err := repo.col.InsertOne(ctx, les); err != nil {
		return lesson.Lesson{}, errors.Wrap(err, "inserting lesson")
	}
	return les, nil
}

func (repo *lessonRepository) GetLessonByID(ctx context.Context, id string) (lesson.Lesson, error) {
	var les lesson.Lesson
	if err := repo.col.FindOne(ctx, bson.M{"_id": id}).Decode(&les); err != nil {
		if err == mongo.ErrNoDocuments {
			return lesson.Lesson{}, lesson.ErrNotFound
		}
		return lesson.Lesson{}, errors.Wrap(err, "getting lesson by id")
	}
	return les, nil
}

func (repo *lessonRepository) FilterLessons(ctx context.Context, filter lesson.QueryFilter) ([]lesson.Lesson, error) {
	query := bson.M{}
	if filter.Language != "" {
		query["language"] = filter.Language
	}
	if filter.Subject != "" {
		query["subject"] = filter.Subject
	}
	if filter.Grade != "" {
		query["grade"] = filter.Grade
	}

	cursor, err := repo.col.Find(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "filtering lessons")
	}
	var lessons []lesson.Lesson
	if err = cursor.All(ctx, &lessons); err != nil {
		return nil, errors.Wrap(err, "decoding lessons")
	}
	return lessons, nil
}
