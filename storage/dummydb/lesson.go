package dummydb

import (
	"context"

	"github.com/nabha-edu/shiksha/core/lesson"
)

type lessonRepository struct {
	db *lessonTable
}

var _ lesson.Repository = (*lessonRepository)(nil) // interface compliance check

func NewLessonRepository(db *DB) lesson.Repository {
	return &lessonRepository{db: db.lesson}
}

func (repo *lessonRepository) CreateLesson(_ context.Context, les lesson.Lesson) (lesson.Lesson, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table[les.ID] = &les
	return les, nil
}

func (repo *lessonRepository) GetLessonByID(_ context.Context, id string) (lesson.Lesson, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if les, ok := repo.db.table[id]; ok {
		return *les, nil
	}
	return lesson.Lesson{}, lesson.ErrNotFound
}

func (repo *lessonRepository) FilterLessons(_ context.Context, filter lesson.QueryFilter) ([]lesson.Lesson, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var lessons []lesson.Lesson
	for _, les := range repo.db.table {
		if filter.Language != "" && les.Language != filter.Language {
			continue
		}
		if filter.Subject != "" && les.Subject != filter.Subject {
			continue
		}
		if filter.Grade != "" && les.Grade != filter.Grade {
			continue
		}
		lessons = append(lessons, *les)
	}
	return lessons, nil
}
