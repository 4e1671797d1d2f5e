package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/dragon-align/internal/config"
	"github.com/iliyamo/dragon-align/internal/handler"
	"github.com/iliyamo/dragon-align/internal/middleware"
	"github.com/iliyamo/dragon-align/internal/model"
)

// RegisterRoutes registers routes that do not require authentication.
func RegisterRoutes(e *echo.Echo, backend string) {
	e.GET("/healthz", handler.Health(backend))
}

// RegisterAuth registers the account endpoints.  Register and login live
// under /v1/auth; /v1/me requires a valid access token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)

	e.GET("/v1/me", a.Me,
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleCoach, model.RoleViewer))
}

// TeamOptions carries the optional Redis-backed middleware settings.  A
// nil Redis client disables caching and rate limiting.
type TeamOptions struct {
	JWTSecret string
	Cache     config.CacheConfig
	RateLimit config.RateLimitConfig
	Redis     *redis.Client
}

// RegisterTeams registers every team operation under /v1/teams/:team.
// Reads are open to coaches and viewers; writes need a coach.  Lineup
// reads are cached per team and any successful write to the team drops
// its cache entries.
func RegisterTeams(e *echo.Echo, h *handler.TeamHandler, opt TeamOptions) {
	g := e.Group("/v1/teams/:team",
		middleware.JWTAuth(opt.JWTSecret),
		middleware.RequireRole(model.RoleCoach, model.RoleViewer),
		middleware.CoachWrites(),
		middleware.TokenBucket(opt.RateLimit, opt.Redis),
		middleware.InvalidateTeam(opt.Cache, opt.Redis),
	)
	cached := middleware.TeamCache(opt.Cache, opt.Redis)

	g.GET("", h.Export)
	g.PUT("", h.Import)
	g.DELETE("", h.ClearAll)

	g.GET("/members", h.ListMembers)
	g.POST("/members", h.AddMember)
	g.PUT("/members/:id", h.EditMember)
	g.DELETE("/members/:id", h.RemoveMember)

	g.POST("/lineup/active", h.AddToLineup)
	g.POST("/lineup/active/:id", h.MoveToActive)
	g.DELETE("/lineup/active/:id", h.RemoveFromLineup)
	g.POST("/lineup/alternatives/:id", h.MoveToAlternatives)
	g.DELETE("/lineup/alternatives/:id", h.RemoveFromAlternatives)

	g.POST("/lineup/generate", h.Generate)
	g.GET("/lineup", h.GetLineup, cached)
	g.DELETE("/lineup", h.ClearLineup)
	g.GET("/lineup/stats", h.Stats, cached)
	g.POST("/lineup/locks/:seat", h.ToggleLock)
	g.POST("/lineup/move", h.Move)
}
