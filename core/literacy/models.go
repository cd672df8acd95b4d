package literacy

import (
	"time"

	"github.com/nabha-edu/shiksha/core"
)

// Categories
const (
	CategoryComputerBasics = "computer_basics"
	CategoryInternetSafety = "internet_safety"
	CategoryTyping         = "typing"
	CategoryCoding         = "coding"
	CategoryCreative       = "creative"
)

// Levels
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// ExerciseKind discriminates the exercise union.
type ExerciseKind string

const (
	ExerciseQuiz     ExerciseKind = "quiz"
	ExerciseTyping   ExerciseKind = "typing"
	ExerciseCoding   ExerciseKind = "coding"
	ExerciseCreative ExerciseKind = "creative"
)

// Exercise is a tagged union over the known exercise kinds: quiz exercises
// carry Question/Options/Answer, typing ones Text, coding and creative
// ones Instruction. Kind selects which fields are meaningful.
type Exercise struct {
	ID   string       `json:"id" bson:"id"`
	Kind ExerciseKind `json:"type" bson:"type"`

	// quiz
	Question string   `json:"question,omitempty" bson:"question,omitempty"`
	Options  []string `json:"options,omitempty" bson:"options,omitempty"`
	Answer   string   `json:"answer,omitempty" bson:"answer,omitempty"`

	// typing
	Text string `json:"text,omitempty" bson:"text,omitempty"`

	// coding | creative
	Instruction string `json:"instruction,omitempty" bson:"instruction,omitempty"`
}

// Content is the structured module body.
type Content struct {
	Topics []string `json:"topics" bson:"topics"`
}

// Module is a digital literacy module. Modules are created by the seeder
// only and are read-only via the API.
type Module struct {
	ID          string              `json:"id" bson:"_id"`
	Title       core.TranslatedText `json:"title" bson:"title"`
	Description core.TranslatedText `json:"description" bson:"description"`
	Category    string              `json:"category" bson:"category"`
	Level       string              `json:"level" bson:"level"`
	Content     Content             `json:"content" bson:"content"`
	Exercises   []Exercise          `json:"exercises" bson:"exercises"`
	CreatedAt   time.Time           `json:"created_at" bson:"created_at"` // UTC
}

// QueryFilter narrows module listings. Fields are ANDed.
type QueryFilter struct {
	Category string `query:"category"`
	Level    string `query:"level"`
}

func (qf *QueryFilter) Clean() {
	qf.Category = core.CleanString(qf.Category, true /* lower */)
	qf.Level = core.CleanString(qf.Level, true /* lower */)
}
