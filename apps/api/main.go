package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nabha-edu/shiksha/apps/api/echo"
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
	"github.com/nabha-edu/shiksha/storage/mongodb"
)

func main() {
	conf, err := core.LoadConfig()
	errAndDie(err)

	std := log.New(os.Stdout, conf.AppName+" : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	var logger core.Logger
	if conf.Debug {
		logger = logsvc.NewConsoleLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, conf)
	}

	if err := run(conf, std, logger); err != nil {
		logger.Fatal("server error", err)
	}
}

func run(conf *core.Config, std *log.Logger, logger core.Logger) error {
	// set up DB
	db, err := mongodb.Open(conf)
	if err != nil {
		return err
	}
	defer mongodb.Close(db)
	if err := mongodb.EnsureIndexes(context.Background(), db); err != nil {
		return err
	}

	// set up repositories & services
	usrRepo := mongodb.NewUserRepository(db)
	attRepo := mongodb.NewAttendanceRepository(db)
	subRepo := mongodb.NewSubmissionRepository(db)
	prgRepo := mongodb.NewProgressRepository(db)

	deps := &echoapi.Deps{
		Logger:        logger,
		UserSvc:       user.NewService(usrRepo),
		LessonSvc:     lesson.NewService(mongodb.NewLessonRepository(db)),
		LiteracySvc:   literacy.NewService(mongodb.NewModuleRepository(db)),
		AssignmentSvc: assignment.NewService(mongodb.NewAssignmentRepository(db)),
		SubmissionSvc: submission.NewService(subRepo),
		AttendanceSvc: attendance.NewService(attRepo),
		ProgressSvc:   progress.NewService(prgRepo),
		AnalyticsSvc:  analytics.NewService(usrRepo, attRepo, subRepo, prgRepo),
	}

	// start API server
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	app := echoapi.NewServer(conf.Server.Addr, shutdown, conf, deps)

	serverErrors := make(chan error, 1)
	go func() {
		std.Printf("API server listening on %s", conf.Server.Addr)
		serverErrors <- app.Start()
	}()

	select {
	case err := <-serverErrors:
		return err
	case sig := <-shutdown:
		std.Printf("%v : start shutdown...", sig)
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			std.Printf("graceful shutdown failed: %v", err)
			return err
		}
	}
	return nil
}

func errAndDie(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
