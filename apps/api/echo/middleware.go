package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nabha-edu/shiksha/core/user"
)

var errHttpForbidden = echo.NewHTTPError(http.StatusForbidden, "permission denied")

// roleMiddleware restricts a route to users holding one of the given roles.
func roleMiddleware(svc user.ServiceInterface, roles ...user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			usr, err := getContextUser(ctx, svc)
			if err != nil {
				return err
			}
			for _, role := range roles {
				if usr.Role == role {
					return next(ctx)
				}
			}
			return errHttpForbidden
		}
	}
}

func adminOnlyMiddleware(svc user.ServiceInterface) echo.MiddlewareFunc {
	return roleMiddleware(svc, user.RoleAdmin)
}

func teacherOrAdminMiddleware(svc user.ServiceInterface) echo.MiddlewareFunc {
	return roleMiddleware(svc, user.RoleTeacher, user.RoleAdmin)
}

func studentOnlyMiddleware(svc user.ServiceInterface) echo.MiddlewareFunc {
	return roleMiddleware(svc, user.RoleStudent)
}
