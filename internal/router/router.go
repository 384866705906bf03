package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/user-account-service/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/user-account-service/internal/middleware" // import middleware for bearer token extraction
)

// RegisterRoutes registers routes that do not belong to the account API on
// the provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAccount registers the two account endpoints under the /api prefix.
// Sign-up takes a JSON body and needs no prior credential; login reads the
// bearer token that the RequireBearer middleware extracts from the
// Authorization header before the handler runs.
func RegisterAccount(e *echo.Echo, a *handler.AccountHandler) {
	g := e.Group("/api")
	// Register a POST endpoint to create an account at /api/sign-up.
	g.POST("/sign-up", a.SignUp)
	// Register a GET endpoint for token-based login at /api/login.
	g.GET("/login", a.Login, middleware.RequireBearer())
}
