package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"presensi/backend/foundation/web"
	"presensi/backend/internal/auth"
)

// Authenticate validates the bearer token and, when roles are given,
// requires the claims to carry one of them. Verified claims are stored
// in the request context for the layers below.
func Authenticate(a *auth.Auth, roles ...string) web.Middleware {
	m := func(handler web.Handler) web.Handler {
		h := func(c *web.Context) error {
			// Expecting: Bearer <token>
			authStr := c.Request.Header.Get("authorization")

			parts := strings.Split(authStr, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				err := errors.New("expected authorization header format: Bearer <token>")
				return c.RespondError(web.NewRequestError(err, http.StatusUnauthorized))
			}

			claims, err := a.ValidateToken(parts[1])
			if err != nil {
				return c.RespondError(web.NewRequestError(err, http.StatusUnauthorized))
			}

			if ok := claims.Authorized(roles...); !ok && len(roles) > 0 {
				return c.RespondError(web.NewRequestError(errors.New("attempted action is not allowed"), http.StatusForbidden))
			}

			c.Ctx = context.WithValue(c.Ctx, auth.Key, claims)

			return handler(c)
		}

		return h
	}

	return m
}
