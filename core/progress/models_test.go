package progress

import (
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/nabha-edu/shiksha/core"
)

func TestUpdate_Validate(t *testing.T) {
	validate := validator.New()

	tests := []struct {
		name    string
		up      Update
		wantErr bool
	}{
		{name: "lesson target", up: Update{LessonID: "l1", CompletionPercentage: 50}},
		{name: "module target", up: Update{ModuleID: "m1", CompletionPercentage: 100, TimeSpent: 600}},
		{name: "no target", up: Update{CompletionPercentage: 50}, wantErr: true},
		{name: "both targets", up: Update{LessonID: "l1", ModuleID: "m1"}, wantErr: true},
		{name: "whitespace-only target counts as empty", up: Update{LessonID: "   "}, wantErr: true},
		{name: "completion below 0", up: Update{LessonID: "l1", CompletionPercentage: -1}, wantErr: true},
		{name: "completion above 100", up: Update{LessonID: "l1", CompletionPercentage: 101}, wantErr: true},
		{name: "negative time spent", up: Update{LessonID: "l1", TimeSpent: -1}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.up.Validate(validate); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	t.Run("target conflict reported on lesson_id", func(t *testing.T) {
		up := Update{}
		err := up.Validate(validate)
		vErr, ok := err.(*core.ValidationError)
		if !ok {
			t.Fatalf("Validate() error = %T, want *core.ValidationError", err)
		}
		if len(vErr.Fields) != 1 || vErr.Fields[0].Field != "lesson_id" {
			t.Errorf("fields = %+v, want one error on lesson_id", vErr.Fields)
		}
	})
}
