// Package api is the REST mirror of the MCP tool surface, built on Gin.
package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/beacondev/echobridge/pkg/api/handlers"
	"github.com/beacondev/echobridge/pkg/control"
	"github.com/beacondev/echobridge/pkg/db"
	"github.com/beacondev/echobridge/pkg/schema"
)

// Router holds the Gin engine and dependencies
type Router struct {
	engine     *gin.Engine
	dispatcher *control.Dispatcher
	validator  *schema.Validator
	db         *db.DB
}

// NewRouter creates a new API router
func NewRouter(dispatcher *control.Dispatcher, validator *schema.Validator, database *db.DB) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	SetupMiddleware(engine)

	router := &Router{
		engine:     engine,
		dispatcher: dispatcher,
		validator:  validator,
		db:         database,
	}

	router.setupRoutes()

	return router
}

// setupRoutes configures all API routes
func (r *Router) setupRoutes() {
	// Swagger UI
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/swagger/index.html")
	})

	// Health check at root
	healthHandler := handlers.NewHealthHandler(r.dispatcher.Client())
	r.engine.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := r.engine.Group("/api/v1")
	{
		// Health
		v1.GET("/health", healthHandler.Health)

		// Discovery reads
		devicesHandler := handlers.NewDevicesHandler(r.dispatcher.Client())
		v1.GET("/devices", devicesHandler.ListDevices)
		v1.GET("/endpoints", devicesHandler.ListEndpoints)
		v1.GET("/favorites", devicesHandler.ListFavorites)

		// Lights
		lightsHandler := handlers.NewLightsHandler(r.dispatcher, r.validator)
		lights := v1.Group("/lights")
		{
			lights.GET("/state", lightsHandler.GetState)
			lights.POST("/power", lightsHandler.SetPower)
			lights.POST("/brightness", lightsHandler.SetBrightness)
			lights.POST("/color", lightsHandler.SetColor)
		}

		// Volume, DND and media status
		audioHandler := handlers.NewAudioHandler(r.dispatcher, r.validator)
		v1.GET("/volume", audioHandler.GetVolume)
		v1.PUT("/volume", audioHandler.PutVolume)
		v1.GET("/dnd", audioHandler.GetDND)
		v1.PUT("/dnd", audioHandler.PutDND)
		v1.GET("/music/now-playing", audioHandler.NowPlaying)

		// Announcements
		announceHandler := handlers.NewAnnounceHandler(r.dispatcher, r.validator)
		v1.POST("/announcements", announceHandler.Create)

		// Profile settings
		if r.db != nil {
			profileHandler := handlers.NewProfileHandler(r.db)
			v1.GET("/profile", profileHandler.Get)
			v1.PUT("/profile", profileHandler.Update)
		}
	}
}

// Engine returns the underlying Gin engine, for tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
