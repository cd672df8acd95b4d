package tests

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/nabha-edu/shiksha/core"
	"github.com/nabha-edu/shiksha/core/literacy"
)

// createModule writes straight to the repo; the API has no module write endpoint.
func createModule(t *testing.T, title, category, level string, exercises ...literacy.Exercise) literacy.Module {
	t.Helper()
	mod := literacy.Module{
		ID:          uuid.New().String(),
		Title:       core.TranslatedText{core.LangEnglish: title},
		Description: core.TranslatedText{core.LangEnglish: title},
		Category:    category,
		Level:       level,
		Content:     literacy.Content{Topics: []string{"Topic 1", "Topic 2"}},
		Exercises:   exercises,
		CreatedAt:   time.Now().UTC(),
	}
	mod, err := modRepo.CreateModule(context.Background(), mod)
	if err != nil {
		t.Fatalf("CreateModule(): %v", err)
	}
	return mod
}

func Test_literacyApi_query(t *testing.T) {
	db.Reset()

	basics := createModule(t, "Computer Basics", literacy.CategoryComputerBasics, literacy.LevelBeginner,
		literacy.Exercise{
			ID:       uuid.New().String(),
			Kind:     literacy.ExerciseQuiz,
			Question: "What is the main input device?",
			Options:  []string{"Monitor", "Keyboard"},
			Answer:   "Keyboard",
		},
	)
	typing := createModule(t, "Typing Practice", literacy.CategoryTyping, literacy.LevelBeginner,
		literacy.Exercise{
			ID:   uuid.New().String(),
			Kind: literacy.ExerciseTyping,
			Text: "The quick brown fox",
		},
	)
	advCoding := createModule(t, "Algorithms", literacy.CategoryCoding, literacy.LevelAdvanced,
		literacy.Exercise{
			ID:          uuid.New().String(),
			Kind:        literacy.ExerciseCoding,
			Instruction: "Sort a list of numbers",
		},
	)

	tests := []httpTest{
		{
			name:     "no auth needed; all modules",
			path:     "/api/digital-literacy",
			wantCode: http.StatusOK,
			wantData: marchallList(t, basics, typing, advCoding),
		},
		{
			name:     "filter by category",
			path:     "/api/digital-literacy?category=typing",
			wantCode: http.StatusOK,
			wantData: marchallList(t, typing),
		},
		{
			name:     "filter by level",
			path:     "/api/digital-literacy?level=beginner",
			wantCode: http.StatusOK,
			wantData: marchallList(t, basics, typing),
		},
		{
			name:     "filter by category and level",
			path:     "/api/digital-literacy?category=coding&level=beginner",
			wantCode: http.StatusOK,
			wantData: []byte(`[]`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodGet, tt.path)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_literacyApi_retrieve(t *testing.T) {
	db.Reset()

	mod := createModule(t, "Internet Safety", literacy.CategoryInternetSafety, literacy.LevelBeginner)

	tests := []httpTest{
		{
			name:     "ok",
			path:     "/api/digital-literacy/" + mod.ID,
			wantCode: http.StatusOK,
			wantData: marchallObj(t, mod),
		},
		{
			name:     "not found",
			path:     "/api/digital-literacy/nope",
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: "module not found"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodGet, tt.path)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
