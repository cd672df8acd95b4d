package lesson

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/nabha-edu/shiksha/core"
)

// Media types
const (
	MediaText        = "text"
	MediaVideo       = "video"
	MediaInteractive = "interactive"
)

type Lesson struct {
	ID          string              `json:"id" bson:"_id"`
	Title       core.TranslatedText `json:"title" bson:"title"`
	Description core.TranslatedText `json:"description" bson:"description"`
	Content     core.TranslatedText `json:"content" bson:"content"`
	Subject     string              `json:"subject" bson:"subject"`
	Grade       string              `json:"grade" bson:"grade"`
	Language    core.Language       `json:"language" bson:"language"`
	MediaType   string              `json:"media_type" bson:"media_type"`
	Thumbnail   string              `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
	CreatedBy   string              `json:"created_by" bson:"created_by"`
	CreatedAt   time.Time           `json:"created_at" bson:"created_at"` // UTC
}

// NewLesson contains information needed to create a new Lesson.
// Lessons are read-only after creation.
type NewLesson struct {
	Title       core.TranslatedText `json:"title" validate:"required"`
	Description core.TranslatedText `json:"description" validate:"required"`
	Content     core.TranslatedText `json:"content" validate:"required"`
	Subject     string              `json:"subject" validate:"required"`
	Grade       string              `json:"grade" validate:"required"`
	Language    core.Language       `json:"language" validate:"required"`
	MediaType   string              `json:"media_type" validate:"omitempty,oneof=text video interactive"`
	Thumbnail   string              `json:"thumbnail"`
}

func (nl *NewLesson) Validate(validate *validator.Validate) error {
	nl.Subject = core.CleanString(nl.Subject)
	nl.Grade = core.CleanString(nl.Grade)
	if nl.MediaType == "" {
		nl.MediaType = MediaText
	}
	if err := validate.Struct(nl); err != nil {
		return err
	}
	// a lesson may also span all languages at once
	if nl.Language != core.LangMultilingual && !core.IsSupportedLanguage(nl.Language) {
		return core.NewValidationError(nil, core.FieldError{Field: "language", Error: "unsupported language"})
	}
	return nil
}

// QueryFilter narrows lesson listings. Fields are ANDed.
type QueryFilter struct {
	Language core.Language `query:"language"`
	Subject  string        `query:"subject"`
	Grade    string        `query:"grade"`
}

func (qf *QueryFilter) Clean() {
	qf.Subject = core.CleanString(qf.Subject)
	qf.Grade = core.CleanString(qf.Grade)
}
