package submission

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nabha-edu/shiksha/core"
)

var ErrNotFound = core.NewNotFoundError("submission not found")

type (
	Repository interface {
		CreateSubmission(ctx context.Context, sub Submission) (Submission, error)
		FilterSubmissions(ctx context.Context, filter QueryFilter) ([]Submission, error)
		// GradeSubmission sets marks and feedback on one submission;
		// returns ErrNotFound when no submission matches id.
		GradeSubmission(ctx context.Context, id string, marks int, feedback string) (Submission, error)
	}

	ServiceInterface interface {
		Create(ctx context.Context, ns NewSubmission, studentID string) (Submission, error)
		Filter(ctx context.Context, filter QueryFilter) ([]Submission, error)
		Grade(ctx context.Context, id string, g Grade) (Submission, error)
	}

	Service struct {
		repo Repository
	}
)

var _ ServiceInterface = (*Service)(nil)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, ns NewSubmission, studentID string) (Submission, error) {
	sub := Submission{
		ID:           uuid.New().String(),
		AssignmentID: ns.AssignmentID,
		StudentID:    studentID,
		Content:      ns.Content,
		SubmittedAt:  time.Now().UTC(),
	}
	return svc.repo.CreateSubmission(ctx, sub)
}

func (svc *Service) Filter(ctx context.Context, filter QueryFilter) ([]Submission, error) {
	return svc.repo.FilterSubmissions(ctx, filter)
}

func (svc *Service) Grade(ctx context.Context, id string, g Grade) (Submission, error) {
	return svc.repo.GradeSubmission(ctx, id, g.Marks, g.Feedback)
}
