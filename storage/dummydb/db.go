package dummydb

import (
	"sync"

	"github.com/nabha-edu/shiksha/core/assignment"
	"github.com/nabha-edu/shiksha/core/attendance"
	"github.com/nabha-edu/shiksha/core/lesson"
	"github.com/nabha-edu/shiksha/core/literacy"
	"github.com/nabha-edu/shiksha/core/progress"
	"github.com/nabha-edu/shiksha/core/submission"
	"github.com/nabha-edu/shiksha/core/user"
)

// DB is an in-memory document store standing in for MongoDB in tests and
// local development. Each collection is a mutex-guarded table.
type (
	DB struct {
		user       *userTable
		lesson     *lessonTable
		module     *moduleTable
		assignment *assignmentTable
		submission *submissionTable
		attendance *attendanceTable
		progress   *progressTable
	}

	userTable struct {
		sync.RWMutex
		table map[string]*user.User
	}

	lessonTable struct {
		sync.RWMutex
		table map[string]*lesson.Lesson
	}

	moduleTable struct {
		sync.RWMutex
		table map[string]*literacy.Module
	}

	assignmentTable struct {
		sync.RWMutex
		table map[string]*assignment.Assignment
	}

	submissionTable struct {
		sync.RWMutex
		table map[string]*submission.Submission
	}

	attendanceTable struct {
		sync.RWMutex
		table map[string]*attendance.Record
	}

	progressTable struct {
		sync.RWMutex
		table map[string]*progress.Record
	}
)

func Open() (*DB, error) {
	db := &DB{
		user:       &userTable{table: make(map[string]*user.User)},
		lesson:     &lessonTable{table: make(map[string]*lesson.Lesson)},
		module:     &moduleTable{table: make(map[string]*literacy.Module)},
		assignment: &assignmentTable{table: make(map[string]*assignment.Assignment)},
		submission: &submissionTable{table: make(map[string]*submission.Submission)},
		attendance: &attendanceTable{table: make(map[string]*attendance.Record)},
		progress:   &progressTable{table: make(map[string]*progress.Record)},
	}
	return db, nil
}

// DeleteUser removes one user; test helper.
func (db *DB) DeleteUser(id string) {
	db.user.Lock()
	delete(db.user.table, id)
	db.user.Unlock()
}

// Reset empties every table; test helper.
func (db *DB) Reset() {
	db.user.Lock()
	db.user.table = make(map[string]*user.User)
	db.user.Unlock()

	db.lesson.Lock()
	db.lesson.table = make(map[string]*lesson.Lesson)
	db.lesson.Unlock()

	db.module.Lock()
	db.module.table = make(map[string]*literacy.Module)
	db.module.Unlock()

	db.assignment.Lock()
	db.assignment.table = make(map[string]*assignment.Assignment)
	db.assignment.Unlock()

	db.submission.Lock()
	db.submission.table = make(map[string]*submission.Submission)
	db.submission.Unlock()

	db.attendance.Lock()
	db.attendance.table = make(map[string]*attendance.Record)
	db.attendance.Unlock()

	db.progress.Lock()
	db.progress.table = make(map[string]*progress.Record)
	db.progress.Unlock()
}
