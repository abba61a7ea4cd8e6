package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/agencydesk/backoffice-api/internal/handler" // import the handlers that implement the catalog endpoints
)

// RegisterRoutes registers the plain service routes on the provided Echo
// instance: the health check used by load balancers and the root status
// message.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
	// The bare root answers with a short JSON status message.
	e.GET("/", handler.Root)
}

// RegisterCatalog registers the read-query catalog under /v1.  Every route
// maps one-to-one onto a repository query; the optional middlewares (the
// rate limiter in practice) are applied to the whole group.
func RegisterCatalog(e *echo.Echo, p *handler.PersonnelHandler, s *handler.StatsHandler, r *handler.RentalHandler, sch *handler.ScheduleHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/v1", mw...)

	// Personnel roster: filter by role type, availability window, rankings.
	g.GET("/personnel/by-type", p.ByType)
	g.GET("/personnel/available", p.Available)
	g.GET("/personnel/actors/top-projects", p.TopActors)
	g.GET("/personnel/actors/least-jobs", p.LeastActors)

	// Cross-entity listings and aggregations.
	g.GET("/stats/personnel/assignments", s.Assignments)
	g.GET("/stats/personnel/contracts", s.Contracts)
	g.GET("/stats/production/expenses/summary", s.ExpenseSummary)
	g.GET("/stats/performers", s.Performers)
	g.GET("/stats/partners/for-performer", s.PartnersForPerformer)

	// Rental places: availability window and in-use-on-date.
	g.GET("/rental/available", r.Available)
	g.GET("/rental/in-use-on-date", r.InUseOnDate)

	// Schedules: activity counts, music productions, upcoming entries.
	g.GET("/schedule/activity/counts", sch.ActivityCounts)
	g.GET("/schedule/production/music", sch.MusicProductions)
	g.GET("/schedule/upcoming", sch.Upcoming)
}

// RegisterItems registers the item CRUD surface under /v1/items.  Mutations
// return the affected record directly rather than the read envelope.
func RegisterItems(e *echo.Echo, i *handler.ItemHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/v1/items", mw...)
	g.GET("", i.List)
	g.POST("", i.Create)
	// The search route must be registered before the :id routes would be
	// matched, but Echo resolves static segments first so the order here is
	// cosmetic.
	g.GET("/search", i.Search)
	g.PUT("/:id", i.Update)
	g.DELETE("/:id", i.Delete)
}
