package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"mapsplanner/cmd/fx/auditfx"
	"mapsplanner/cmd/fx/authfx"
	"mapsplanner/cmd/fx/dbfx"
	"mapsplanner/cmd/fx/markersfx"
	"mapsplanner/cmd/fx/sessionsfx"
	"mapsplanner/cmd/fx/tripsfx"
	"mapsplanner/cmd/fx/usersfx"
	"mapsplanner/internal/api/controllers"
	"mapsplanner/internal/services"
	"mapsplanner/pkg/config"
	"mapsplanner/pkg/middleware"
)

func main() {
	app := fx.New(
		fx.Provide(config.Load),
		dbfx.Module,
		sessionsfx.Module,
		authfx.Module,
		auditfx.Module,
		usersfx.Module,
		tripsfx.Module,
		markersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	sessionService services.SessionServiceInterface,
	authController *controllers.AuthController,
	usersController *controllers.UsersController,
	tripsController *controllers.TripsController,
	markersController *controllers.MarkersController,
	auditController *controllers.AuditController,
) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.FrontendURL))

	RegisterRoutes(r, sessionService,
		authController, usersController, tripsController, markersController, auditController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	sessionService services.SessionServiceInterface,
	authController *controllers.AuthController,
	usersController *controllers.UsersController,
	tripsController *controllers.TripsController,
	markersController *controllers.MarkersController,
	auditController *controllers.AuditController) {

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.GET("/google", authController.GoogleLogin)
	authGroup.GET("/logout", authController.Logout)

	authenticated := api.Group("")
	authenticated.Use(middleware.SessionAuthMiddleware(sessionService))

	usersGroup := authenticated.Group("/users")
	usersGroup.GET("/current", usersController.CurrentUser)
	usersGroup.GET("/:id", usersController.UserDetails)
	usersGroup.PATCH("/:id", usersController.UpdateUser)

	tripsGroup := authenticated.Group("/trips")
	tripsGroup.GET("", tripsController.ListTrips)
	tripsGroup.POST("", tripsController.CreateTrip)
	tripsGroup.GET("/:id", tripsController.GetTrip)
	tripsGroup.PATCH("/:id", tripsController.UpdateTrip)
	tripsGroup.DELETE("/:id", tripsController.DeleteTrip)

	markersGroup := authenticated.Group("/markers")
	markersGroup.GET("", markersController.ListMarkers)
	markersGroup.POST("", markersController.CreateMarkers)
	markersGroup.GET("/geocoding", markersController.Geocoding)
	markersGroup.GET("/:id", markersController.GetMarker)
	markersGroup.PATCH("/:id", markersController.UpdateMarker)
	markersGroup.DELETE("/:id", markersController.DeleteMarker)
	markersGroup.POST("/:id/generate-markers", markersController.GenerateMarkers)

	auditGroup := authenticated.Group("/audit")
	auditGroup.GET("", auditController.ListAuditLogs)
}
