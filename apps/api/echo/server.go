package echoapi

import (
	"context"
	"net/http"
	"os"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/nabha-edu/shiksha/core"
	"github.com/nabha-edu/shiksha/core/analytics"
	"github.com/nabha-edu/shiksha/core/assignment"
	"github.com/nabha-edu/shiksha/core/attendance"
	"github.com/nabha-edu/shiksha/core/lesson"
	"github.com/nabha-edu/shiksha/core/literacy"
	"github.com/nabha-edu/shiksha/core/progress"
	"github.com/nabha-edu/shiksha/core/submission"
	"github.com/nabha-edu/shiksha/core/user"
)

type (
	// Deps holds the services the API serves; wired manually in main.
	Deps struct {
		Logger        core.Logger
		UserSvc       user.ServiceInterface
		LessonSvc     lesson.ServiceInterface
		LiteracySvc   literacy.ServiceInterface
		AssignmentSvc assignment.ServiceInterface
		SubmissionSvc submission.ServiceInterface
		AttendanceSvc attendance.ServiceInterface
		ProgressSvc   progress.ServiceInterface
		AnalyticsSvc  analytics.ServiceInterface
	}

	Server interface {
		http.Handler
		Start() error
		Stop(context.Context) error
	}

	server struct {
		addr     string
		shutdown chan os.Signal
		conf     *core.Config
		deps     *Deps
		app      *echo.Echo

		validate   *validator.Validate
		translator ut.Translator
	}
)

var _ Server = (*server)(nil)

func NewServer(addr string, shutdown chan os.Signal, conf *core.Config, deps *Deps) Server {
	s := &server{
		addr:     addr,
		shutdown: shutdown,
		conf:     conf,
		deps:     deps,
		app:      echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	s.validate = validator.New()
	s.translator = newTranslator()
	core.InitValidators(s.validate, s.translator)

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.conf.TestMode {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(s.conf.Debug || s.conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}
	s.app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     s.conf.CORSOrigins,
		AllowCredentials: true,
	}))

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.translator, s.signalShutdown)
	s.app.Debug = s.conf.Debug

	s.app.GET("/", home)

	api := s.app.Group("/api")
	jwt := middleware.JWTWithConfig(newJWTConfig(s.conf))

	registerAuthAPI(api, jwt, s.deps.UserSvc, s.validate, s.conf)
	registerLessonAPI(api, jwt, s.deps.LessonSvc, s.deps.UserSvc, s.validate)
	registerLiteracyAPI(api, s.deps.LiteracySvc)
	registerAssignmentAPI(api, jwt, s.deps.AssignmentSvc, s.deps.UserSvc, s.validate)
	registerSubmissionAPI(api, jwt, s.deps.SubmissionSvc, s.deps.UserSvc, s.validate)
	registerAttendanceAPI(api, jwt, s.deps.AttendanceSvc, s.deps.UserSvc, s.validate)
	registerProgressAPI(api, jwt, s.deps.ProgressSvc, s.deps.UserSvc, s.validate)
	registerAnalyticsAPI(api, jwt, s.deps.AnalyticsSvc, s.deps.UserSvc)
	registerStudentAPI(api, jwt, s.deps.UserSvc)
}

// signalShutdown asks main to gracefully shut the server down; used when the
// error handler catches an integrity error.
func (s *server) signalShutdown() {
	if s.shutdown != nil {
		s.shutdown <- syscall.SIGTERM
	}
}

func (s *server) Start() error {
	return s.app.Start(s.addr)
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to Shiksha API!")
}
