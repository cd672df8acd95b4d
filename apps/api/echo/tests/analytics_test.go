package tests

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/nabha-edu/shiksha/core"
	"github.com/nabha-edu/shiksha/core/analytics"
	"github.com/nabha-edu/shiksha/core/user"
)

func Test_analyticsApi_classSummary(t *testing.T) {
	db.Reset()

	teacher := createUser(t, "Gurpreet Kaur", "gurpreet@test.in", "s3cret", user.RoleTeacher, "Class 8A")
	studentA := createUser(t, "Simran Singh", "simran@test.in", "s3cret", user.RoleStudent, "Class 8A")
	studentB := createUser(t, "Rajesh Kumar", "rajesh@test.in", "s3cret", user.RoleStudent, "Class 8A")
	// other classes must not bleed into the summary
	outsider := createUser(t, "Noor Kaur", "noor@test.in", "s3cret", user.RoleStudent, "Class 9B")

	les := createLesson(t, "The Water Cycle", "Science", "Class 8", core.LangEnglish, teacher.ID)
	asg := createAssignment(t, "Essay", teacher.ID, "Class 8A")
	createSubmission(t, asg.ID, studentA.ID, "A's essay")
	createSubmission(t, asg.ID, studentB.ID, "B's essay")
	createSubmission(t, asg.ID, outsider.ID, "outsider essay")

	report := func(usr user.User, completion float64) {
		body := []byte(fmt.Sprintf(`{"lesson_id": %q, "completion_percentage": %v}`, les.ID, completion))
		req, rec := newAuthRequest(http.MethodPost, "/api/progress", getToken(t, usr), body)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("seeding progress failed: %s", rec.Body.String())
		}
	}
	report(studentA, 40)
	report(studentB, 80)

	mark := func(date string) {
		body := []byte(fmt.Sprintf(`{
			"class_name": "Class 8A", "date": %q,
			"students": [
				{"student_id": %q, "status": "present"},
				{"student_id": %q, "status": "absent"}
			]
		}`, date, studentA.ID, studentB.ID))
		req, rec := newAuthRequest(http.MethodPost, "/api/attendance", getToken(t, teacher), body)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("seeding attendance failed: %s", rec.Body.String())
		}
	}
	mark("2026-09-01")
	mark("2026-09-02")

	t.Run("auth required", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/api/analytics/class/Class%208A")
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)}, rec)
	})

	t.Run("students cannot view analytics", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/api/analytics/class/Class%208A", getToken(t, studentA))
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{
			wantCode: http.StatusForbidden,
			wantData: marchallObj(t, httpErr{Error: "permission denied"}),
		}, rec)
	})

	t.Run("teacher gets the class summary", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/api/analytics/class/Class%208A", getToken(t, teacher))
		app.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; want %v; body %s", rec.Code, http.StatusOK, rec.Body.String())
		}
		var sum analytics.ClassSummary
		if err := json.Unmarshal(rec.Body.Bytes(), &sum); err != nil {
			t.Fatalf("json.Unmarshal(): %v", err)
		}
		if sum.TotalStudents != 2 {
			t.Errorf("total_students = %d; want 2", sum.TotalStudents)
		}
		if sum.AttendanceRecords != 4 {
			t.Errorf("attendance_records = %d; want 4", sum.AttendanceRecords)
		}
		if sum.TotalSubmissions != 2 {
			t.Errorf("total_submissions = %d; want 2 (outsider excluded)", sum.TotalSubmissions)
		}
		if sum.AvgProgress != 60 {
			t.Errorf("avg_progress = %v; want 60", sum.AvgProgress)
		}
		if len(sum.Students) != 2 {
			t.Errorf("len(students) = %d; want 2", len(sum.Students))
		}
	})

	t.Run("unknown class is an empty summary", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/api/analytics/class/Class%2012Z", getToken(t, teacher))
		app.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; want %v; body %s", rec.Code, http.StatusOK, rec.Body.String())
		}
		var sum analytics.ClassSummary
		if err := json.Unmarshal(rec.Body.Bytes(), &sum); err != nil {
			t.Fatalf("json.Unmarshal(): %v", err)
		}
		if sum.TotalStudents != 0 || sum.AvgProgress != 0 {
			t.Errorf("summary = %+v; want zeroes", sum)
		}
		if sum.Students == nil || len(sum.Students) != 0 {
			t.Errorf("students = %v; want []", sum.Students)
		}
	})
}
