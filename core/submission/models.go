package submission

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/nabha-edu/shiksha/core"
)

type Submission struct {
	ID           string    `json:"id" bson:"_id"`
	AssignmentID string    `json:"assignment_id" bson:"assignment_id"`
	StudentID    string    `json:"student_id" bson:"student_id"`
	Content      string    `json:"content" bson:"content"`
	Marks        *int      `json:"marks" bson:"marks"`
	Feedback     *string   `json:"feedback" bson:"feedback"`
	SubmittedAt  time.Time `json:"submitted_at" bson:"submitted_at"` // UTC
}

// NewSubmission contains information needed to create a new Submission.
// Multiple submissions per (assignment, student) are allowed.
type NewSubmission struct {
	AssignmentID string `json:"assignment_id" validate:"required"`
	Content      string `json:"content" validate:"required"`
}

func (ns *NewSubmission) Validate(validate *validator.Validate) error {
	ns.AssignmentID = core.CleanString(ns.AssignmentID)
	return validate.Struct(ns)
}

// Grade is the teacher's partial update applied to one submission.
// Marks is stored verbatim; it is not clamped to the assignment's total.
type Grade struct {
	Marks    int    `json:"marks" validate:"min=0"`
	Feedback string `json:"feedback"`
}

func (g *Grade) Validate(validate *validator.Validate) error {
	g.Feedback = core.CleanString(g.Feedback)
	return validate.Struct(g)
}

// QueryFilter narrows submission listings. Fields are ANDed.
type QueryFilter struct {
	AssignmentID string `query:"assignment_id"`
	StudentID    string
	StudentIDs   []string
}

func (qf *QueryFilter) Clean() {
	qf.AssignmentID = core.CleanString(qf.AssignmentID)
}
