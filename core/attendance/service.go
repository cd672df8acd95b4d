package attendance

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type (
	Repository interface {
		// CreateRecords inserts all records in one store operation (all-or-nothing).
		CreateRecords(ctx context.Context, recs []Record) error
		FilterRecords(ctx context.Context, filter QueryFilter) ([]Record, error)
	}

	ServiceInterface interface {
		BulkMark(ctx context.Context, bm BulkMark, markedBy string) ([]Record, error)
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

func (svc *Service) BulkMark(ctx context.Context, bm BulkMark, markedBy string) ([]Record, error) {
	now := time.Now().UTC()
	recs := make([]Record, 0, len(bm.Students))
	for _, ss := range bm.Students {
		recs = append(recs, Record{
			ID:        uuid.New().String(),
			StudentID: ss.StudentID,
			ClassName: bm.ClassName,
			Date:      bm.Date,
			Status:    ss.Status,
			MarkedBy:  markedBy,
			CreatedAt: now,
		})
	}
	if err := svc.repo.CreateRecords(ctx, recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (svc *Service) Filter(ctx context.Context, filter QueryFilter) ([]Record, error) {
	return svc.repo.FilterRecords(ctx, filter)
}
