package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/nabha-edu/shiksha/core/literacy"
)

type literacyApi struct {
	svc literacy.ServiceInterface
}

// registerLiteracyAPI serves the digital literacy catalog. Modules are
// seeded content; there is no write endpoint.
func registerLiteracyAPI(g *echo.Group, svc literacy.ServiceInterface) {
	api := literacyApi{svc: svc}

	mg := g.Group("/digital-literacy")
	mg.GET("", api.query)
	mg.GET("/:id", api.retrieve)
}

func (api *literacyApi) query(ctx echo.Context) error {
	filter := new(literacy.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []literacy.Module{})
	}
	filter.Clean()

	modules, err := api.svc.Filter(ctx.Request().Context(), *filter)
	if err != nil {
		return errors.Wrap(err, "querying modules")
	}
	if modules == nil {
		modules = []literacy.Module{}
	}
	return ctx.JSON(http.StatusOK, modules)
}

func (api *literacyApi) retrieve(ctx echo.Context) error {
	mod, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding module by ID")
	}
	return ctx.JSON(http.StatusOK, mod)
}
