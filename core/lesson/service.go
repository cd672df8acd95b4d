package lesson

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nabha-edu/shiksha/core"
)

var ErrNotFound = core.NewNotFoundError("lesson not found")

type (
	Repository interface {
		CreateLesson(ctx context.Context, les Lesson) (Lesson, error)
		GetLessonByID(ctx context.Context, id string) (Lesson, error)
		FilterLessons(ctx context.Context, filter QueryFilter) ([]Lesson, error)
	}

	ServiceInterface interface {
		Create(ctx context.Context, nl NewLesson, createdBy string) (Lesson, error)
		GetByID(ctx context.Context, id string) (Lesson, error)
		Filter(ctx context.Context, filter QueryFilter) ([]Lesson, error)
	}

	Service struct {
		repo Repository
	}
)

var _ ServiceInterface = (*Service)(nil)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, nl NewLesson, createdBy string) (Lesson, error) {
	les := Lesson{
		ID:          uuid.New().String(),
		Title:       nl.Title,
		Description: nl.Description,
		Content:     nl.Content,
		Subject:     nl.Subject,
		Grade:       nl.Grade,
		Language:    nl.Language,
		MediaType:   nl.MediaType,
		Thumbnail:   nl.Thumbnail,
		CreatedBy:   createdBy,
		CreatedAt:   time.Now().UTC(),
	}
	return svc.repo.CreateLesson(ctx, les)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Lesson, error) {
	return svc.repo.GetLessonByID(ctx, id)
}

func (svc *Service) Filter(ctx context.Context, filter QueryFilter) ([]Lesson, error) {
	return svc.repo.FilterLessons(ctx, filter)
}
