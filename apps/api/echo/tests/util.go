package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	. "github.com/nabha-edu/shiksha/apps/api/echo"
	"github.com/nabha-edu/shiksha/core"
	"github.com/nabha-edu/shiksha/core/assignment"
	"github.com/nabha-edu/shiksha/core/attendance"
	"github.com/nabha-edu/shiksha/core/lesson"
	"github.com/nabha-edu/shiksha/core/literacy"
	"github.com/nabha-edu/shiksha/core/progress"
	"github.com/nabha-edu/shiksha/core/submission"
	"github.com/nabha-edu/shiksha/core/user"
	"github.com/nabha-edu/shiksha/storage/dummydb"
)

var (
	db   *dummydb.DB
	app  Server
	conf *core.Config

	usrRepo user.Repository
	lesRepo lesson.Repository
	modRepo literacy.Repository
	asgRepo assignment.Repository
	subRepo submission.Repository
	attRepo attendance.Repository
	prgRepo progress.Repository
)

var errMissingToken = httpErr{Error: "missing or malformed jwt"}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
	extra    interface{}
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

// createUser writes straight to the repo, bypassing the API.
func createUser(t *testing.T, name, email, pwd string, role user.Role, className string) user.User {
	t.Helper()
	usr := user.User{
		ID:                 uuid.New().String(),
		Name:               name,
		Email:              email,
		Role:               role,
		ClassName:          className,
		LanguagePreference: core.DefaultLanguage,
		CreatedAt:          time.Now().UTC(),
	}
	if err := usr.SetPassword(pwd); err != nil {
		t.Fatalf("SetPassword(): %v", err)
	}
	usr, err := usrRepo.CreateUser(context.Background(), usr)
	if err != nil {
		t.Fatalf("CreateUser(): %v", err)
	}
	return usr
}

func getToken(t *testing.T, usr user.User) string {
	claims := GetUserClaims(usr, conf.Server.JWTExpirationDelta)
	token, err := GenerateToken(claims, conf.SecretKey)
	if err != nil {
		t.Fatalf("getToken(): %v", err)
	}
	return token
}

func getExpiredToken(t *testing.T, usr user.User) string {
	claims := GetUserClaims(usr, -time.Hour)
	token, err := GenerateToken(claims, conf.SecretKey)
	if err != nil {
		t.Fatalf("getExpiredToken(): %v", err)
	}
	return token
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj(): %v", err)
	}
	return data
}

func marchallList(t *testing.T, objs ...interface{}) []byte {
	data, err := json.Marshal(objs)
	if err != nil {
		t.Fatalf("marchallList(): %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	if l1, ok := j1.([]interface{}); ok {
		if l2, ok := j2.([]interface{}); ok {
			return assert.ElementsMatch(t, l1, l2), nil
		}
	}
	return false, nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
