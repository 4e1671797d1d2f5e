package middleware // middleware provides shared request processing for handlers

import (
    "net/http" // http package defines standard HTTP status codes

    "github.com/labstack/echo/v4" // echo provides middleware chaining and context

    "github.com/iliyamo/dragon-align/internal/model"
)

// RequireRole returns a middleware that enforces that the authenticated
// caller has one of the given roles.  It assumes JWTAuth has stored the
// role in the context under "role".  Anything else is answered with 403.
func RequireRole(roles ...string) echo.MiddlewareFunc {
    allowed := make(map[string]bool, len(roles))
    for _, r := range roles {
        allowed[r] = true
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            role, ok := c.Get("role").(string)
            if !ok || !allowed[role] {
                return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
            }
            return next(c)
        }
    }
}

// CoachWrites lets every authenticated role read, but only coaches may
// send mutating requests.
func CoachWrites() echo.MiddlewareFunc {
    coach := RequireRole(model.RoleCoach)
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        guarded := coach(next)
        return func(c echo.Context) error {
            if isRead(c.Request().Method) {
                return next(c)
            }
            return guarded(c)
        }
    }
}

func isRead(method string) bool {
    return method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions
}
