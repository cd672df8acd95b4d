package assignment

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type (
	Repository interface {
		CreateAssignment(ctx context.Context, asg Assignment) (Assignment, error)
		FilterAssignments(ctx context.Context, filter QueryFilter) ([]Assignment, error)
	}

	ServiceInterface interface {
		Create(ctx context.Context, na NewAssignment, teacherID string) (Assignment, error)
		Filter(ctx context.Context, filter QueryFilter) ([]Assignment, error)
	}

	Service struct {
		repo Repository
	}
)

var _ ServiceInterface = (*Service)(nil)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, na NewAssignment, teacherID string) (Assignment, error) {
	asg := Assignment{
		ID:          uuid.New().String(),
		Title:       na.Title,
		Description: na.Description,
		LessonID:    na.LessonID,
		TeacherID:   teacherID,
		ClassName:   na.ClassName,
		DueDate:     na.Due(),
		TotalMarks:  na.TotalMarks,
		CreatedAt:   time.Now().UTC(),
	}
	return svc.repo.CreateAssignment(ctx, asg)
}

func (svc *Service) Filter(ctx context.Context, filter QueryFilter) ([]Assignment, error) {
	return svc.repo.FilterAssignments(ctx, filter)
}
