package tests

import (
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	. "github.com/nabha-edu/shiksha/apps/api/echo"
	"github.com/nabha-edu/shiksha/core"
	"github.com/nabha-edu/shiksha/core/analytics"
	"github.com/nabha-edu/shiksha/core/assignment"
	"github.com/nabha-edu/shiksha/core/attendance"
	"github.com/nabha-edu/shiksha/core/lesson"
	"github.com/nabha-edu/shiksha/core/literacy"
	"github.com/nabha-edu/shiksha/core/progress"
	"github.com/nabha-edu/shiksha/core/submission"
	"github.com/nabha-edu/shiksha/core/user"
	"github.com/nabha-edu/shiksha/services/logger"
	"github.com/nabha-edu/shiksha/storage/dummydb"
)

func TestMain(m *testing.M) {
	var err error

	conf = new(core.Config)
	conf.TestMode = true
	conf.SecretKey = "s3cr3t-k3y"
	conf.CORSOrigins = []string{"*"}
	conf.Server.JWTExpirationDelta = time.Hour

	// set up DB & repos
	if db, err = dummydb.Open(); err != nil {
		fmt.Printf("dummydb.Open(): %v", err)
		os.Exit(1)
	}
	usrRepo = dummydb.NewUserRepository(db)
	lesRepo = dummydb.NewLessonRepository(db)
	modRepo = dummydb.NewModuleRepository(db)
	asgRepo = dummydb.NewAssignmentRepository(db)
	subRepo = dummydb.NewSubmissionRepository(db)
	attRepo = dummydb.NewAttendanceRepository(db)
	prgRepo = dummydb.NewProgressRepository(db)

	// set up server
	app = NewServer(
		"",  /* addr */
		nil, /* shutdown */
		conf,
		&Deps{
			Logger:        logsvc.NewConsoleLogger(log.New(os.Stdout, "TEST : ", log.LstdFlags)),
			UserSvc:       user.NewService(usrRepo),
			LessonSvc:     lesson.NewService(lesRepo),
			LiteracySvc:   literacy.NewService(modRepo),
			AssignmentSvc: assignment.NewService(asgRepo),
			SubmissionSvc: submission.NewService(subRepo),
			AttendanceSvc: attendance.NewService(attRepo),
			ProgressSvc:   progress.NewService(prgRepo),
			AnalyticsSvc:  analytics.NewService(usrRepo, attRepo, subRepo, prgRepo),
		},
	)

	os.Exit(m.Run())
}
