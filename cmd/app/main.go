package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripcraft/cmd/fx/controllers_fx"
	"tripcraft/cmd/fx/db_fx"
	"tripcraft/cmd/fx/enrichment_fx"
	"tripcraft/cmd/fx/itinerary_fx"
	"tripcraft/cmd/fx/providers_fx"
	"tripcraft/cmd/fx/venues_fx"
	"tripcraft/internal/api/controllers"
	"tripcraft/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	app := fx.New(
		db_fx.Module,
		providers_fx.Module,
		venues_fx.Module,
		enrichment_fx.Module,
		itinerary_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
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
	itineraryController *controllers.ItineraryController,
	venuesController *controllers.VenuesController,
) *gin.Engine {
	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, itineraryController, venuesController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	venuesController *controllers.VenuesController) {

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	itineraryGroup := r.Group("/itinerary")
	itineraryGroup.POST("/generate", itineraryController.GenerateItinerary)
	itineraryGroup.POST("/smart-generate", itineraryController.GenerateSmartItinerary)
	itineraryGroup.GET("/:id", itineraryController.GetItinerary)

	r.GET("/itineraries", itineraryController.ListItineraries)

	venuesGroup := r.Group("/venues")
	venuesGroup.GET("/:destinationId", venuesController.GetVenuesByDestination)

	admin := r.Group("/")
	admin.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	admin.PUT("/itinerary/:id", itineraryController.UpdateItinerary)
	admin.DELETE("/itinerary/:id", itineraryController.DeleteItinerary)
	admin.POST("/venues/sync", venuesController.SyncVenues)
	admin.DELETE("/venues/:id", venuesController.DeleteVenue)
}
