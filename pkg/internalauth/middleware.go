package internalauth

import (
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/builder/pkg/apierr"
)

// claimsContextKey is the echo context key holding verified Claims for
// handlers downstream of RequireToken.
const claimsContextKey = "internalauth.claims"

// RequireToken returns echo middleware that verifies an "Authorization:
// Bearer <token>" header against s, rejecting the request with an
// AuthenticationError envelope on any failure. Verified claims are
// stashed on the context for handlers that need the calling subject.
func RequireToken(s *Signer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			const prefix = "Bearer "
			if !strings.HasPrefix(header, prefix) {
				return writeUnauthorized(c, "missing bearer token")
			}
			claims, err := s.Verify(strings.TrimPrefix(header, prefix))
			if err != nil {
				return writeUnauthorized(c, err.Error())
			}
			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

// ClaimsFrom returns the verified Claims stashed by RequireToken, if any.
func ClaimsFrom(c *echo.Context) (*Claims, bool) {
	v := c.Get(claimsContextKey)
	claims, ok := v.(*Claims)
	return claims, ok
}

func writeUnauthorized(c *echo.Context, reason string) error {
	env, status := apierr.ToEnvelope(apierr.New(apierr.KindAuthentication, reason))
	return c.JSON(status, env)
}
