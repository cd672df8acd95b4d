package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/nabha-edu/shiksha/core/assignment"
	"github.com/nabha-edu/shiksha/core/user"
)

type assignmentApi struct {
	svc      assignment.ServiceInterface
	usrSvc   user.ServiceInterface
	validate *validator.Validate
}

func registerAssignmentAPI(
	g *echo.Group,
	jwt echo.MiddlewareFunc,
	svc assignment.ServiceInterface,
	usrSvc user.ServiceInterface,
	validate *validator.Validate,
) {
	api := assignmentApi{svc: svc, usrSvc: usrSvc, validate: validate}

	ag := g.Group("/assignments", jwt)
	ag.GET("", api.query)
	ag.POST("", api.create, teacherOrAdminMiddleware(usrSvc))
}

func (api *assignmentApi) create(ctx echo.Context) error {
	var data assignment.NewAssignment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAssignment")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	ctxUsr, err := getContextUser(ctx, api.usrSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}
	asg, err := api.svc.Create(ctx.Request().Context(), data, ctxUsr.ID)
	if err != nil {
		return errors.Wrap(err, "creating assignment")
	}
	return ctx.JSON(http.StatusCreated, asg)
}

// query scopes results to the caller: students see their class's
// assignments, teachers see their own, admins see everything.
func (api *assignmentApi) query(ctx echo.Context) error {
	ctxUsr, err := getContextUser(ctx, api.usrSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	var filter assignment.QueryFilter
	switch {
	case ctxUsr.IsStudent():
		if ctxUsr.ClassName == "" { // no class, no assignments
			return ctx.JSON(http.StatusOK, []assignment.Assignment{})
		}
		filter.ClassName = ctxUsr.ClassName
	case ctxUsr.IsTeacher():
		filter.TeacherID = ctxUsr.ID
	}

	assignments, err := api.svc.Filter(ctx.Request().Context(), filter)
	if err != nil {
		return errors.Wrap(err, "querying assignments")
	}
	if assignments == nil {
		assignments = []assignment.Assignment{}
	}
	return ctx.JSON(http.StatusOK, assignments)
}
