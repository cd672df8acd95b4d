package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/nabha-edu/shiksha/core/progress"
	"github.com/nabha-edu/shiksha/core/user"
)

type progressApi struct {
	svc      progress.ServiceInterface
	usrSvc   user.ServiceInterface
	validate *validator.Validate
}

func registerProgressAPI(
	g *echo.Group,
	jwt echo.MiddlewareFunc,
	svc progress.ServiceInterface,
	usrSvc user.ServiceInterface,
	validate *validator.Validate,
) {
	api := progressApi{svc: svc, usrSvc: usrSvc, validate: validate}

	pg := g.Group("/progress", jwt)
	pg.GET("", api.query)
	pg.POST("", api.upsert, studentOnlyMiddleware(usrSvc))
}

// upsert records time spent on a lesson or module; repeated calls for the
// same target update the existing record in place.
func (api *progressApi) upsert(ctx echo.Context) error {
	var data progress.Update
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Update")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	ctxUsr, err := getContextUser(ctx, api.usrSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}
	rec, err := api.svc.Upsert(ctx.Request().Context(), data, ctxUsr.ID)
	if err != nil {
		return errors.Wrap(err, "upserting progress record")
	}
	return ctx.JSON(http.StatusOK, rec)
}

// query scopes results to the caller: students are pinned to their own
// records; teachers and admins may filter by any student_id.
func (api *progressApi) query(ctx echo.Context) error {
	filter := new(progress.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []progress.Record{})
	}
	filter.Clean()

	ctxUsr, err := getContextUser(ctx, api.usrSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}
	if ctxUsr.IsStudent() {
		filter.StudentID = ctxUsr.ID
	}

	recs, err := api.svc.Filter(ctx.Request().Context(), *filter)
	if err != nil {
		return errors.Wrap(err, "querying progress records")
	}
	if recs == nil {
		recs = []progress.Record{}
	}
	return ctx.JSON(http.StatusOK, recs)
}
