package attendance

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/nabha-edu/shiksha/core"
)

// Status is the closed set of attendance states.
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
)

type Record struct {
	ID        string    `json:"id" bson:"_id"`
	StudentID string    `json:"student_id" bson:"student_id"`
	ClassName string    `json:"class_name" bson:"class_name"`
	Date      string    `json:"date" bson:"date"`
	Status    Status    `json:"status" bson:"status"`
	MarkedBy  string    `json:"marked_by" bson:"marked_by"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"` // UTC
}

// StudentStatus is one roster entry of a bulk marking request.
type StudentStatus struct {
	StudentID string `json:"student_id" validate:"required"`
	Status    Status `json:"status" validate:"required,oneof=present absent"`
}

// BulkMark is the teacher's bulk attendance request for one class and date.
type BulkMark struct {
	Students  []StudentStatus `json:"students" validate:"required,min=1,dive"`
	ClassName string          `json:"class_name" validate:"required"`
	Date      string          `json:"date" validate:"required"`
}

func (bm *BulkMark) Validate(validate *validator.Validate) error {
	bm.ClassName = core.CleanString(bm.ClassName)
	bm.Date = core.CleanString(bm.Date)
	return validate.Struct(bm)
}

// QueryFilter narrows attendance listings. Fields are ANDed.
type QueryFilter struct {
	StudentID  string
	StudentIDs []string
	ClassName  string `query:"class_name"`
	Date       string `query:"date"`
}

func (qf *QueryFilter) Clean() {
	qf.ClassName = core.CleanString(qf.ClassName)
	qf.Date = core.CleanString(qf.Date)
}
