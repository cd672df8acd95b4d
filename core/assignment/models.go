package assignment

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/nabha-edu/shiksha/core"
)

const DefaultTotalMarks = 100

type Assignment struct {
	ID          string    `json:"id" bson:"_id"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	LessonID    string    `json:"lesson_id,omitempty" bson:"lesson_id,omitempty"`
	TeacherID   string    `json:"teacher_id" bson:"teacher_id"`
	ClassName   string    `json:"class_name" bson:"class_name"`
	DueDate     time.Time `json:"due_date" bson:"due_date"` // UTC
	TotalMarks  int       `json:"total_marks" bson:"total_marks"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"` // UTC
}

// NewAssignment contains information needed to create a new Assignment.
// Assignments are immutable after creation.
type NewAssignment struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	LessonID    string `json:"lesson_id"`
	ClassName   string `json:"class_name" validate:"required"`
	DueDate     string `json:"due_date" validate:"required"`
	TotalMarks  int    `json:"total_marks" validate:"omitempty,min=1"`

	dueDate time.Time
}

// Validate cleans and validates the request body. The due date string must
// parse as an ISO-8601 datetime.
func (na *NewAssignment) Validate(validate *validator.Validate) error {
	na.Title = core.CleanString(na.Title)
	na.ClassName = core.CleanString(na.ClassName)
	if na.TotalMarks == 0 {
		na.TotalMarks = DefaultTotalMarks
	}

	if err := validate.Struct(na); err != nil {
		return err
	}

	due, err := parseISODatetime(na.DueDate)
	if err != nil {
		return core.NewValidationError(err, core.FieldError{Field: "due_date", Error: "must be an ISO-8601 datetime"})
	}
	na.dueDate = due
	return nil
}

// Due returns the parsed due date; only valid after Validate succeeded.
func (na *NewAssignment) Due() time.Time { return na.dueDate }

var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseISODatetime(s string) (time.Time, error) {
	var err error
	for _, layout := range isoLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, err
}

// QueryFilter narrows assignment listings. Fields are ANDed.
type QueryFilter struct {
	TeacherID string
	ClassName string
}
