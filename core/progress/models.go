package progress

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/nabha-edu/shiksha/core"
)

type Record struct {
	ID                   string    `json:"id" bson:"_id"`
	StudentID            string    `json:"student_id" bson:"student_id"`
	LessonID             string    `json:"lesson_id,omitempty" bson:"lesson_id,omitempty"`
	ModuleID             string    `json:"module_id,omitempty" bson:"module_id,omitempty"`
	CompletionPercentage float64   `json:"completion_percentage" bson:"completion_percentage"`
	TimeSpent            int       `json:"time_spent" bson:"time_spent"` // seconds
	LastAccessed         time.Time `json:"last_accessed" bson:"last_accessed"` // UTC
}

// Update is a student's progress report against one lesson or one module;
// exactly one of the two identifiers must be set.
type Update struct {
	LessonID             string  `json:"lesson_id"`
	ModuleID             string  `json:"module_id"`
	CompletionPercentage float64 `json:"completion_percentage" validate:"min=0,max=100"`
	TimeSpent            int     `json:"time_spent" validate:"min=0"` // seconds
}

func (up *Update) Validate(validate *validator.Validate) error {
	up.LessonID = core.CleanString(up.LessonID)
	up.ModuleID = core.CleanString(up.ModuleID)

	if (up.LessonID == "") == (up.ModuleID == "") {
		return core.NewValidationError(nil,
			core.FieldError{Field: "lesson_id", Error: "exactly one of lesson_id or module_id is required"})
	}
	return validate.Struct(up)
}

// QueryFilter narrows progress listings. Fields are ANDed.
type QueryFilter struct {
	StudentID  string `query:"student_id"`
	StudentIDs []string
}

func (qf *QueryFilter) Clean() {
	qf.StudentID = core.CleanString(qf.StudentID)
}
