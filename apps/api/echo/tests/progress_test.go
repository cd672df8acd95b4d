package tests

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/nabha-edu/shiksha/core"
	"github.com/nabha-edu/shiksha/core/progress"
	"github.com/nabha-edu/shiksha/core/user"
)

func Test_progressApi_upsert(t *testing.T) {
	db.Reset()

	teacher := createUser(t, "Gurpreet Kaur", "gurpreet@test.in", "s3cret", user.RoleTeacher, "Class 8A")
	student := createUser(t, "Simran Singh", "simran@test.in", "s3cret", user.RoleStudent, "Class 8A")
	les := createLesson(t, "The Water Cycle", "Science", "Class 8", core.LangEnglish, teacher.ID)

	tests := []httpTest{
		{
			name:     "auth required",
			body:     []byte(`{"lesson_id": "x", "completion_percentage": 10}`),
			wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, errMissingToken),
		},
		{
			name:     "teachers cannot report progress",
			body:     []byte(`{"lesson_id": "x", "completion_percentage": 10}`),
			token:    getToken(t, teacher),
			wantCode: http.StatusForbidden,
			wantData: marchallObj(t, httpErr{Error: "permission denied"}),
		},
		{
			name:     "no target rejected",
			body:     []byte(`{"completion_percentage": 10}`),
			token:    getToken(t, student),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"lesson_id": "exactly one of lesson_id or module_id is required"}),
		},
		{
			name:     "both targets rejected",
			body:     []byte(`{"lesson_id": "a", "module_id": "b", "completion_percentage": 10}`),
			token:    getToken(t, student),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"lesson_id": "exactly one of lesson_id or module_id is required"}),
		},
		{
			name:     "completion over 100 rejected",
			body:     []byte(`{"lesson_id": "a", "completion_percentage": 150}`),
			token:    getToken(t, student),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"completion_percentage": "completion_percentage must be 100 or less"}),
		},
		{
			name:     "negative time rejected",
			body:     []byte(`{"lesson_id": "a", "completion_percentage": 10, "time_spent": -60}`),
			token:    getToken(t, student),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"time_spent": "time_spent must be 0 or greater"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodPost, "/api/progress", tt.token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	t.Run("repeated reports update a single record", func(t *testing.T) {
		report := func(completion float64, timeSpent int) progress.Record {
			body := []byte(fmt.Sprintf(`{"lesson_id": %q, "completion_percentage": %v, "time_spent": %d}`, les.ID, completion, timeSpent))
			req, rec := newAuthRequest(http.MethodPost, "/api/progress", getToken(t, student), body)
			app.ServeHTTP(rec, req)
			if rec.Code != http.StatusOK {
				t.Fatalf("code = %v; want %v; body %s", rec.Code, http.StatusOK, rec.Body.String())
			}
			var prg progress.Record
			if err := json.Unmarshal(rec.Body.Bytes(), &prg); err != nil {
				t.Fatalf("json.Unmarshal(): %v", err)
			}
			return prg
		}

		first := report(25, 300)
		if first.StudentID != student.ID {
			t.Errorf("student_id = %s; want %s", first.StudentID, student.ID)
		}

		second := report(80, 900)
		if second.ID != first.ID {
			t.Errorf("second report created a new record: %s != %s", second.ID, first.ID)
		}
		if second.CompletionPercentage != 80 || second.TimeSpent != 900 {
			t.Errorf("record = %+v; want completion 80, time 900", second)
		}

		recs, err := prgRepo.FilterRecords(context.Background(), progress.QueryFilter{StudentID: student.ID})
		if err != nil {
			t.Fatalf("FilterRecords(): %v", err)
		}
		if len(recs) != 1 {
			t.Errorf("len(records) = %d; want 1", len(recs))
		}
	})
}

func Test_progressApi_query(t *testing.T) {
	db.Reset()

	teacher := createUser(t, "Gurpreet Kaur", "gurpreet@test.in", "s3cret", user.RoleTeacher, "Class 8A")
	studentA := createUser(t, "Simran Singh", "simran@test.in", "s3cret", user.RoleStudent, "Class 8A")
	studentB := createUser(t, "Rajesh Kumar", "rajesh@test.in", "s3cret", user.RoleStudent, "Class 8A")
	les := createLesson(t, "The Water Cycle", "Science", "Class 8", core.LangEnglish, teacher.ID)

	report := func(usr user.User, completion float64) {
		body := []byte(fmt.Sprintf(`{"lesson_id": %q, "completion_percentage": %v}`, les.ID, completion))
		req, rec := newAuthRequest(http.MethodPost, "/api/progress", getToken(t, usr), body)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("seeding progress failed: %s", rec.Body.String())
		}
	}
	report(studentA, 40)
	report(studentB, 70)

	check := func(t *testing.T, path, token, wantStudent string) {
		t.Helper()
		req, rec := newAuthRequest(http.MethodGet, path, token)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; want %v; body %s", rec.Code, http.StatusOK, rec.Body.String())
		}
		var recs []progress.Record
		if err := json.Unmarshal(rec.Body.Bytes(), &recs); err != nil {
			t.Fatalf("json.Unmarshal(): %v", err)
		}
		if len(recs) != 1 {
			t.Fatalf("len(records) = %d; want 1", len(recs))
		}
		if recs[0].StudentID != wantStudent {
			t.Errorf("student_id = %s; want %s", recs[0].StudentID, wantStudent)
		}
	}

	t.Run("student pinned to own records", func(t *testing.T) {
		// the student_id param is ignored for students
		check(t, "/api/progress?student_id="+studentB.ID, getToken(t, studentA), studentA.ID)
	})
	t.Run("teacher filters by student", func(t *testing.T) {
		check(t, "/api/progress?student_id="+studentB.ID, getToken(t, teacher), studentB.ID)
	})
}
