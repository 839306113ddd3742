package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"crop-advisory-service/internal/config"
)

func NewRouter(h *Handler, logger *logrus.Logger, cfg config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLoggingMiddleware(logger))

	api := r.Group(cfg.API.BasePath)
	{
		api.POST("/farmer-input", h.CreateFarmer)
		api.GET("/advisory/:farmer_id", h.GetAdvisory)
		api.GET("/advisories/history/:farmer_id", h.GetAdvisoryHistory)
		api.GET("/deliveries/:request_id", h.GetDeliveryAttempts)
		api.GET("/market-prices/:crop", h.GetMarketPrices)
		api.GET("/config", h.GetAppConfig)
		api.GET("/ws/:farmer_id", h.WatchDeliveries)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}
