package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/nabha-edu/shiksha/core/analytics"
	"github.com/nabha-edu/shiksha/core/user"
)

type analyticsApi struct {
	svc analytics.ServiceInterface
}

func registerAnalyticsAPI(
	g *echo.Group,
	jwt echo.MiddlewareFunc,
	svc analytics.ServiceInterface,
	usrSvc user.ServiceInterface,
) {
	api := analyticsApi{svc: svc}
	g.GET("/analytics/class/:class_name", api.classSummary, jwt, teacherOrAdminMiddleware(usrSvc))
}

func (api *analyticsApi) classSummary(ctx echo.Context) error {
	summary, err := api.svc.ClassSummary(ctx.Request().Context(), ctx.Param("class_name"))
	if err != nil {
		return errors.Wrap(err, "computing class summary")
	}
	return ctx.JSON(http.StatusOK, summary)
}
