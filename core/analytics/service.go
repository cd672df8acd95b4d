package analytics

import (
	"context"

	"github.com/pkg/errors"

	"github.com/nabha-edu/shiksha/core/attendance"
	"github.com/nabha-edu/shiksha/core/progress"
	"github.com/nabha-edu/shiksha/core/submission"
	"github.com/nabha-edu/shiksha/core/user"
)

// ClassSummary aggregates attendance, submission and progress volumes for one
// class roster. Recomputed per request; nothing is cached.
type ClassSummary struct {
	TotalStudents     int         `json:"total_students"`
	AttendanceRecords int         `json:"attendance_records"`
	TotalSubmissions  int         `json:"total_submissions"`
	AvgProgress       float64     `json:"avg_progress"`
	Students          []user.User `json:"students"`
}

type (
	ServiceInterface interface {
		ClassSummary(ctx context.Context, className string) (ClassSummary, error)
	}

	Service struct {
		usrRepo user.Repository
		attRepo attendance.Repository
		subRepo submission.Repository
		prgRepo progress.Repository
	}
)

var _ ServiceInterface = (*Service)(nil)

func NewService(
	usrRepo user.Repository,
	attRepo attendance.Repository,
	subRepo submission.Repository,
	prgRepo progress.Repository,
) *Service {
	return &Service{
		usrRepo: usrRepo,
		attRepo: attRepo,
		subRepo: subRepo,
		prgRepo: prgRepo,
	}
}

func (svc *Service) ClassSummary(ctx context.Context, className string) (ClassSummary, error) {
	students, err := svc.usrRepo.FilterUsers(ctx, user.QueryFilter{Role: user.RoleStudent, ClassName: className})
	if err != nil {
		return ClassSummary{}, errors.Wrap(err, "loading class roster")
	}
	if students == nil {
		students = []user.User{}
	}

	ids := make([]string, 0, len(students))
	for _, s := range students {
		ids = append(ids, s.ID)
	}

	// three independent scans, no join
	attRecs, err := svc.attRepo.FilterRecords(ctx, attendance.QueryFilter{StudentIDs: ids})
	if err != nil {
		return ClassSummary{}, errors.Wrap(err, "loading attendance records")
	}
	subs, err := svc.subRepo.FilterSubmissions(ctx, submission.QueryFilter{StudentIDs: ids})
	if err != nil {
		return ClassSummary{}, errors.Wrap(err, "loading submissions")
	}
	prgRecs, err := svc.prgRepo.FilterRecords(ctx, progress.QueryFilter{StudentIDs: ids})
	if err != nil {
		return ClassSummary{}, errors.Wrap(err, "loading progress records")
	}

	var avg float64
	if len(prgRecs) > 0 { // avoid division by zero
		var sum float64
		for _, rec := range prgRecs {
			sum += rec.CompletionPercentage
		}
		avg = sum / float64(len(prgRecs))
	}

	return ClassSummary{
		TotalStudents:     len(students),
		AttendanceRecords: len(attRecs),
		TotalSubmissions:  len(subs),
		AvgProgress:       avg,
		Students:          students,
	}, nil
}
