package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	pkgAuth "github.com/polkiloo/orderdesk/internal/pkg/auth"
	"github.com/polkiloo/orderdesk/internal/server/http/handlers"
	"github.com/polkiloo/orderdesk/internal/server/http/middleware"
)

const eventsPath = "/api/events"

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.DashboardFacade, tokens pkgAuth.Strategy, events handlers.EventSource, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{eventsPath})))

	sessionHandler := handlers.NewSessionHandler(facade, tokens)
	settingsHandler := handlers.NewSettingsHandler(facade)
	stateHandler := handlers.NewStateHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	menuHandler := handlers.NewMenuHandler(facade)
	eventsHandler := handlers.NewEventsHandler(events)

	api := engine.Group("/api")
	api.GET("/health", handlers.Health)
	api.GET("/auth/login", sessionHandler.Login)
	api.GET("/auth/callback", sessionHandler.Callback)
	api.POST("/session", sessionHandler.Create)
	api.GET("/settings", settingsHandler.Get)
	api.PATCH("/settings", middleware.AuthWhileSignedIn(tokens, facade), settingsHandler.Patch)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(tokens, facade))
	authed.GET("/session", sessionHandler.Show)
	authed.DELETE("/session", sessionHandler.Delete)
	authed.GET("/state", stateHandler.Get)
	authed.POST("/sync", stateHandler.Sync)
	authed.GET("/orders", orderHandler.List)
	authed.GET("/orders/:id", orderHandler.Get)
	authed.PUT("/orders/:id/status", orderHandler.UpdateStatus)
	authed.POST("/orders/:id/advance", orderHandler.Advance)
	authed.POST("/orders/:id/ack", orderHandler.Acknowledge)
	authed.GET("/menu", menuHandler.List)
	authed.PUT("/menu/:id", menuHandler.Update)
	engine.GET(eventsPath, middleware.AuthRequired(tokens, facade), eventsHandler.Stream)

	return engine
}
