package main

import (
	"context"
	"testing"

	"github.com/nabha-edu/shiksha/core/lesson"
	"github.com/nabha-edu/shiksha/core/literacy"
	"github.com/nabha-edu/shiksha/core/user"
	"github.com/nabha-edu/shiksha/storage/dummydb"
)

var (
	usrRepo user.Repository
	lesRepo lesson.Repository
	modRepo literacy.Repository
)

func setup(t *testing.T) *commandLine {
	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("dummydb.Open() failed, %v", err)
	}
	usrRepo = dummydb.NewUserRepository(db)
	lesRepo = dummydb.NewLessonRepository(db)
	modRepo = dummydb.NewModuleRepository(db)

	return &commandLine{
		usrRepo: usrRepo,
		lesRepo: lesRepo,
		modRepo: modRepo,
		dropSeedData: func(context.Context) error {
			db.Reset()
			return nil
		},
	}
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
	extra      interface{}
}

func Test_commandLine_addUser(t *testing.T) {
	cli := setup(t)

	type extra struct {
		pwd string
	}
	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "no args", args: []string{"adduser"}, wantErr: errHelp},
		{name: "name but no email", args: []string{"adduser", "-name", "Jas Kaur"}, wantErr: errHelp},
		{name: "name and email but no password", args: []string{"adduser", "-name", "Jas Kaur", "-email", "jas@test.in"}, wantErr: errHelp},
		{name: "create teacher", args: []string{"adduser", "-name", "Jas Kaur", "-email", "jas@test.in"}, extra: extra{pwd: "s3cret"}},
		{name: "promote to admin", args: []string{"adduser", "-name", "Jas Kaur", "-email", "jas@test.in", "-admin"}, extra: extra{pwd: "n3wpwd"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		readPasswordFunc = func(fd int) ([]byte, error) {
			if extra, ok := tt.extra.(extra); ok {
				return []byte(extra.pwd), nil
			}
			return nil, nil
		}

		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(args)
			if err == nil {
				usr, err := usrRepo.GetUserByEmail(context.Background(), "jas@test.in")
				if err != nil {
					t.Fatalf("GetUserByEmail() failed, %v", err)
				}
				extra := tt.extra.(extra)
				if err := usr.CheckPassword(extra.pwd); err != nil {
					t.Error("failed to set new password")
				}
			} else if err != tt.wantErr {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	// the second successful run must update the same account, not add one
	usrs, err := usrRepo.FilterUsers(context.Background(), user.QueryFilter{})
	if err != nil {
		t.Fatalf("FilterUsers() failed, %v", err)
	}
	if len(usrs) != 1 {
		t.Errorf("len(users) = %d, want 1", len(usrs))
	}
	if usrs[0].Role != user.RoleAdmin {
		t.Errorf("role = %s, want %s", usrs[0].Role, user.RoleAdmin)
	}
}

func Test_commandLine_seed(t *testing.T) {
	cli := setup(t)
	ctx := context.Background()

	// seeding twice must leave a single clean data set
	for i := 0; i < 2; i++ {
		if err := cli.run([]string{"admin", "seed"}); err != nil {
			t.Fatalf("cli.run() failed, %v", err)
		}
	}

	usrs, err := usrRepo.FilterUsers(ctx, user.QueryFilter{})
	if err != nil {
		t.Fatalf("FilterUsers() failed, %v", err)
	}
	if len(usrs) != 4 {
		t.Errorf("len(users) = %d, want 4", len(usrs))
	}

	teacher, err := usrRepo.GetUserByEmail(ctx, "teacher@school.com")
	if err != nil {
		t.Fatalf("GetUserByEmail() failed, %v", err)
	}
	if !teacher.IsTeacher() {
		t.Errorf("role = %s, want %s", teacher.Role, user.RoleTeacher)
	}
	if err := teacher.CheckPassword("teacher123"); err != nil {
		t.Error("teacher password hash does not match seeded password")
	}

	lessons, err := lesRepo.FilterLessons(ctx, lesson.QueryFilter{})
	if err != nil {
		t.Fatalf("FilterLessons() failed, %v", err)
	}
	if len(lessons) != 3 {
		t.Errorf("len(lessons) = %d, want 3", len(lessons))
	}
	for _, les := range lessons {
		if les.CreatedBy != teacher.ID {
			t.Errorf("lesson %s created_by = %s, want %s", les.ID, les.CreatedBy, teacher.ID)
		}
	}

	modules, err := modRepo.FilterModules(ctx, literacy.QueryFilter{})
	if err != nil {
		t.Fatalf("FilterModules() failed, %v", err)
	}
	if len(modules) != 5 {
		t.Errorf("len(modules) = %d, want 5", len(modules))
	}

	var quizzes, typings int
	for _, mod := range modules {
		for _, ex := range mod.Exercises {
			switch ex.Kind {
			case literacy.ExerciseQuiz:
				quizzes++
			case literacy.ExerciseTyping:
				typings++
				if ex.Text != "The quick brown fox jumps over the lazy dog" {
					t.Errorf("typing text = %q", ex.Text)
				}
			}
		}
	}
	if quizzes != 2 {
		t.Errorf("quiz exercises = %d, want 2", quizzes)
	}
	if typings != 1 {
		t.Errorf("typing exercises = %d, want 1", typings)
	}
}
