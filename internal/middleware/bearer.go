package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "net/http" // HTTP status codes for responses
    "strings"  // string utilities for prefix checking and trimming
    "time"     // timestamps for error entries

    "github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers
)

// BearerTokenKey is the context key under which RequireBearer stores the
// raw bearer token for downstream handlers.
const BearerTokenKey = "bearer_token"

// RequireBearer returns an Echo middleware that extracts the raw token from
// the Authorization header and injects it into the request context under
// BearerTokenKey. It performs no cryptographic verification: deciding
// whether the token is acceptable is the account service's job. Requests
// without a "Bearer " header are rejected with 400 before the handler runs.
func RequireBearer() echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            auth := c.Request().Header.Get("Authorization")
            if !strings.HasPrefix(auth, "Bearer ") {
                // Same list-of-details body shape the handlers use.
                return c.JSON(http.StatusBadRequest, echo.Map{
                    "error": []echo.Map{{
                        "timestamp": time.Now().UTC(),
                        "code":      http.StatusBadRequest,
                        "detail":    "Authorization header with Bearer token is required",
                    }},
                })
            }
            c.Set(BearerTokenKey, strings.TrimPrefix(auth, "Bearer "))
            return next(c)
        }
    }
}
