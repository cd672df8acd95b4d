package user

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/nabha-edu/shiksha/core"
)

// Role is the closed set of account roles. It is fixed at creation;
// the API never changes it afterwards.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

var AllRoles = []Role{RoleStudent, RoleTeacher, RoleAdmin}

type User struct {
	ID                 string        `json:"id" bson:"_id"`
	Name               string        `json:"name" bson:"name"`
	Email              string        `json:"email" bson:"email"`
	Role               Role          `json:"role" bson:"role"`
	School             string        `json:"school,omitempty" bson:"school,omitempty"`
	ClassName          string        `json:"class_name,omitempty" bson:"class_name,omitempty"`
	LanguagePreference core.Language `json:"language_preference" bson:"language_preference"`
	PasswordHash       []byte        `json:"-" bson:"password"`
	CreatedAt          time.Time     `json:"created_at" bson:"created_at"` // UTC
}

func (u *User) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

func (u *User) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(pwd))
}

func (u *User) IsAdmin() bool   { return u.Role == RoleAdmin }
func (u *User) IsTeacher() bool { return u.Role == RoleTeacher }
func (u *User) IsStudent() bool { return u.Role == RoleStudent }

// NewUser contains information needed to create a new User.
type NewUser struct {
	Name               string        `json:"name" validate:"required"`
	Email              string        `json:"email" validate:"required,email"`
	Password           string        `json:"password" validate:"required,min=6"`
	Role               Role          `json:"role" validate:"required,oneof=student teacher admin"`
	School             string        `json:"school"`
	ClassName          string        `json:"class_name"`
	LanguagePreference core.Language `json:"language_preference" validate:"omitempty,language"`
}

func (nu *NewUser) Validate(ctx context.Context, validate *validator.Validate, svc ServiceInterface) error {
	nu.Name = core.CleanString(nu.Name)
	nu.Email = core.CleanString(nu.Email, true /* lower */)
	nu.School = core.CleanString(nu.School)
	nu.ClassName = core.CleanString(nu.ClassName)
	if nu.LanguagePreference == "" {
		nu.LanguagePreference = core.DefaultLanguage
	}

	if err := validate.Struct(nu); err != nil {
		return err
	}
	return svc.CheckEmailUniqueness(ctx, nu.Email)
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (c *Credentials) Validate(validate *validator.Validate) error {
	c.Email = core.CleanString(c.Email, true /* lower */)
	return validate.Struct(c)
}

// QueryFilter narrows user listings. Fields are ANDed.
type QueryFilter struct {
	Role      Role
	ClassName string `query:"class_name"`
}

func (qf *QueryFilter) Clean() {
	qf.ClassName = core.CleanString(qf.ClassName)
}
