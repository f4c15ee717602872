package middleware

import (
	"context"
	"net/http"
	"strings"

	"prestamos-backend/internal/usecase/auth"

	"github.com/labstack/echo/v4"
)

const principalKey = "auth.principal"

type Authenticator interface {
	Authenticate(ctx context.Context, raw string) (*auth.Principal, error)
}

var errMissingToken = echo.NewHTTPError(http.StatusUnauthorized, "No autenticado")

// RequireAuth accepts "Authorization: Bearer <token>" and stores the caller
// on the echo context for handlers and later middleware.
func RequireAuth(a Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, found := bearer(c.Request().Header.Get(echo.HeaderAuthorization))
			if !found {
				return errMissingToken
			}
			p, err := a.Authenticate(c.Request().Context(), raw)
			if err != nil {
				return err
			}
			c.Set(principalKey, p)
			return next(c)
		}
	}
}

func PrincipalFrom(c echo.Context) (*auth.Principal, bool) {
	p, ok := c.Get(principalKey).(*auth.Principal)
	return p, ok && p != nil
}

// SetPrincipal is for tests and handlers mounted without RequireAuth.
func SetPrincipal(c echo.Context, p *auth.Principal) { c.Set(principalKey, p) }

func bearer(h string) (string, bool) {
	scheme, tok, found := strings.Cut(strings.TrimSpace(h), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	tok = strings.TrimSpace(tok)
	return tok, tok != ""
}
