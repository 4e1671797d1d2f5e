package middleware

// userID returns the account id JWTAuth stored in the context, or "guest"
// when the request is unauthenticated.

import "github.com/labstack/echo/v4"

func userID(c echo.Context) string {
    if s, ok := c.Get("user_id").(string); ok && s != "" {
        return s
    }
    return "guest"
}
