package progress

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type (
	Repository interface {
		// UpsertRecord applies rec to the live record keyed by
		// (student_id, lesson_id|module_id), inserting it if none exists.
		// The lookup and write must be one atomic store operation so that
		// concurrent updates to the same key cannot create duplicates.
		UpsertRecord(ctx context.Context, rec Record) (Record, error)
		FilterRecords(ctx context.Context, filter QueryFilter) ([]Record, error)
	}

	ServiceInterface interface {
		Upsert(ctx context.Context, up Update, studentID string) (Record, error)
		Filter(ctx context.Context, filter QueryFilter) ([]Record, error)
	}

	Service struct {
		repo Repository
	}
)

var _ ServiceInterface = (*Service)(nil)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Upsert(ctx context.Context, up Update, studentID string) (Record, error) {
	rec := Record{
		ID:                   uuid.New().String(), // kept only when the upsert inserts
		StudentID:            studentID,
		LessonID:             up.LessonID,
		ModuleID:             up.ModuleID,
		CompletionPercentage: up.CompletionPercentage,
		TimeSpent:            up.TimeSpent,
		LastAccessed:         time.Now().UTC(),
	}
	return svc.repo.UpsertRecord(ctx, rec)
}

func (svc *Service) Filter(ctx context.Context, filter QueryFilter) ([]Record, error) {
	return svc.repo.FilterRecords(ctx, filter)
}
