package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"teahouse-backend/internal/shared/middleware"
	"teahouse-backend/internal/shared/response"
	"teahouse-backend/pkg/container"
)

// SetupRouter registers the fixture's fixed HTTP surface. Routes live
// at the root — the contract the external tool probes has no version
// prefix.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	// Health check
	router.GET("/health", healthHandler(c))
	router.GET("/health/live", healthHandler(c))
	router.GET("/health/ready", readyHandler(c))

	// TIF signature: /brew (singular) is always a 418, regardless of
	// any state.
	router.GET("/brew", teapotSignatureHandler)

	setupTeapotRoutes(router, c)
	setupTeaRoutes(router, c)
	setupBrewRoutes(router, c)

	router.NoRoute(func(ctx *gin.Context) {
		response.NotFound(ctx, "Route not found")
	})

	return router
}

// ========================================
// TEAPOT ROUTES
// ========================================
func setupTeapotRoutes(router *gin.Engine, c *container.Container) {
	teapots := router.Group("/teapots")
	{
		teapots.GET("", c.TeapotHandler.List)
		teapots.POST("", c.TeapotHandler.Create)
		teapots.GET("/:id", c.TeapotHandler.GetByID)
		teapots.PUT("/:id", c.TeapotHandler.Replace)
		teapots.PATCH("/:id", c.TeapotHandler.Patch)
		teapots.DELETE("/:id", c.TeapotHandler.Delete)
		teapots.GET("/:id/brews", c.BrewHandler.ListByTeapot)
	}
}

// ========================================
// TEA ROUTES
// ========================================
func setupTeaRoutes(router *gin.Engine, c *container.Container) {
	teas := router.Group("/teas")
	{
		teas.GET("", c.TeaHandler.List)
		teas.POST("", c.TeaHandler.Create)
		teas.GET("/:id", c.TeaHandler.GetByID)
		teas.PUT("/:id", c.TeaHandler.Replace)
		teas.PATCH("/:id", c.TeaHandler.Patch)
		teas.DELETE("/:id", c.TeaHandler.Delete)
	}
}

// ========================================
// BREW + NESTED STEEP ROUTES
// ========================================
func setupBrewRoutes(router *gin.Engine, c *container.Container) {
	brews := router.Group("/brews")
	{
		brews.GET("", c.BrewHandler.List)
		brews.POST("", c.BrewHandler.Create)
		brews.GET("/:id", c.BrewHandler.GetByID)
		brews.PATCH("/:id", c.BrewHandler.Patch)
		brews.DELETE("/:id", c.BrewHandler.Delete)
		brews.GET("/:id/steeps", c.SteepHandler.ListByBrew)
		brews.POST("/:id/steeps", c.SteepHandler.Create)
	}
}

func healthHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"name":    c.Config.App.Name,
			"version": c.Config.App.Version,
		})
	}
}

func readyHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !c.Ready.Load() {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "starting"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}

func teapotSignatureHandler(ctx *gin.Context) {
	ctx.JSON(http.StatusTeapot, gin.H{
		"error":   "I'm a teapot",
		"message": "This server is TIF-compliant and cannot brew coffee",
		"spec":    "https://teapotframework.dev",
	})
}
