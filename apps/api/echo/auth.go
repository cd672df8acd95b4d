package echoapi

import (
	"context"
	"net/http"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/nabha-edu/shiksha/core"
	"github.com/nabha-edu/shiksha/core/user"
)

const jwtContextKey = "userToken"

var errInvalidCredentials = echo.NewHTTPError(http.StatusUnauthorized, "invalid email or password")

// Claims is the JWT payload; the subject is the user ID.
type Claims struct {
	jwt.StandardClaims
	Email string    `json:"email"`
	Role  user.Role `json:"role"`
}

func newJWTConfig(conf *core.Config) middleware.JWTConfig {
	return middleware.JWTConfig{
		Claims:     new(Claims),
		ContextKey: jwtContextKey,
		SigningKey: []byte(conf.SecretKey),
	}
}

func GetUserClaims(usr user.User, expirationDelta time.Duration) *Claims {
	now := time.Now()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Subject:   usr.ID,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(expirationDelta).Unix(),
		},
		Email: usr.Email,
		Role:  usr.Role,
	}
}

func GenerateToken(claims *Claims, secretKey string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secretKey))
	return signed, errors.Wrap(err, "signing token")
}

// authenticate checks the credentials against the stored password hash.
// Unknown emails and wrong passwords fail the same way.
func authenticate(ctx context.Context, creds user.Credentials, svc user.ServiceInterface) (user.User, error) {
	usr, err := svc.GetByEmail(ctx, creds.Email)
	if err != nil {
		if core.IsNotFound(err) {
			return user.User{}, errInvalidCredentials
		}
		return user.User{}, err
	}
	if err := usr.CheckPassword(creds.Password); err != nil {
		return user.User{}, errInvalidCredentials
	}
	return usr, nil
}

func getContextClaims(ctx echo.Context) (*Claims, error) {
	token, ok := ctx.Get(jwtContextKey).(*jwt.Token)
	if !ok {
		return nil, errors.New("missing token in context")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}
	return claims, nil
}

// getContextUser loads the authenticated user lazily and caches it on the
// request context.
func getContextUser(ctx echo.Context, svc user.ServiceInterface) (user.User, error) {
	if usr, ok := ctx.Get("user").(user.User); ok {
		return usr, nil
	}
	claims, err := getContextClaims(ctx)
	if err != nil {
		return user.User{}, err
	}
	usr, err := svc.GetByID(ctx.Request().Context(), claims.Subject)
	if err != nil {
		return user.User{}, err // NotFound bubbles up as 404
	}
	ctx.Set("user", usr)
	return usr, nil
}
