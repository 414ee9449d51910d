package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jkelleher/presspool/internal/api/handlers"
	"github.com/jkelleher/presspool/internal/api/middleware"
	"github.com/jkelleher/presspool/internal/services"
	"github.com/jkelleher/presspool/pkg/config"
	"github.com/jkelleher/presspool/pkg/database"
)

// SetupRoutes configures all API routes on the given router group
func SetupRoutes(group *gin.RouterGroup, db *database.DB, cache *services.CacheService, cfg *config.Config, logger *logrus.Logger) {
	// Initialize services
	calc := services.NewRoundCalculator(db, cache, logger, cfg.MaxBetCents, cfg.ResultsCacheTTL)
	finalizer := services.NewFinalizer(db, calc, logger)
	presses := services.NewPressService(db, calc, logger)

	// Initialize handlers
	roundHandler := handlers.NewRoundHandler(calc, finalizer, logger)
	pressHandler := handlers.NewPressHandler(presses, logger)

	// Round results are readable without auth; everything that moves money or
	// changes press state requires a token.
	group.GET("/rounds/:id/results", roundHandler.GetResults)

	authed := group.Group("")
	authed.Use(middleware.AuthRequired(cfg.JWTSecret))
	{
		authed.POST("/rounds/:id/finalize", roundHandler.FinalizeRound)
		authed.POST("/rounds/:id/presses", pressHandler.OpenPress)
		authed.POST("/presses/:id/cancel", pressHandler.CancelPress)
	}
}
