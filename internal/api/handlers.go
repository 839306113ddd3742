package api

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"crop-advisory-service/internal/advisory"
	"crop-advisory-service/internal/db"
	"crop-advisory-service/internal/models"
	"crop-advisory-service/internal/notify"
	"crop-advisory-service/internal/refdata"
)

type Handler struct {
	db     *db.DB
	svc    *advisory.Service
	tables *refdata.Tables
	hub    *notify.EventHub
	logger *logrus.Logger
}

func NewHandler(db *db.DB, svc *advisory.Service, tables *refdata.Tables, hub *notify.EventHub, logger *logrus.Logger) *Handler {
	return &Handler{db: db, svc: svc, tables: tables, hub: hub, logger: logger}
}

var phonePattern = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// CreateFarmer validates a registration payload against the reference data and
// stores the farmer. Out-of-domain input is rejected here, before the advisory
// pipeline can ever see it.
func (h *Handler) CreateFarmer(c *gin.Context) {
	var in models.FarmerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.logger.Errorf("Invalid farmer input: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in.Crop = strings.ToLower(in.Crop)
	in.CropStage = strings.ToLower(in.CropStage)
	in.SoilType = strings.ToLower(in.SoilType)

	if !phonePattern.MatchString(in.PhoneNumber) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "phone_number must be in E.164 format, e.g. +919876543210"})
		return
	}
	if !h.tables.ValidCrop(in.Crop) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "crop '" + in.Crop + "' is not supported"})
		return
	}
	if !h.tables.ValidStage(in.Crop, in.CropStage) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid stage '" + in.CropStage + "' for crop '" + in.Crop + "'"})
		return
	}
	if !h.tables.ValidSoil(in.SoilType) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid soil type '" + in.SoilType + "'"})
		return
	}
	if !h.tables.Templates.Supported(in.Language) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unsupported language '" + in.Language + "'"})
		return
	}

	farmer, err := h.db.CreateFarmer(c.Request.Context(), in)
	if err != nil {
		h.logger.Errorf("Create farmer failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.logger.Infof("Created farmer %d (%s/%s)", farmer.ID, farmer.Crop, farmer.CropStage)
	c.JSON(http.StatusCreated, farmer)
}

// GetAdvisory computes the structured advisory synchronously and queues the
// deferred delivery of the flattened message.
func (h *Handler) GetAdvisory(c *gin.Context) {
	farmerID, err := strconv.Atoi(c.Param("farmer_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid farmer id"})
		return
	}

	farmer, err := h.db.GetFarmer(c.Request.Context(), farmerID)
	if err != nil {
		h.logger.Errorf("Get farmer %d failed: %v", farmerID, err)
		c.JSON(http.StatusNotFound, gin.H{"error": "Farmer not found"})
		return
	}

	bundle, message := h.svc.ComputeAdvisory(c.Request.Context(), farmer)
	requestID := h.svc.QueueDelivery(farmer, message)

	c.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"request_id": requestID,
		"advisory":   bundle,
	})
}

// GetAdvisoryHistory returns the farmer's past advisories, newest first.
func (h *Handler) GetAdvisoryHistory(c *gin.Context) {
	farmerID, err := strconv.Atoi(c.Param("farmer_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid farmer id"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	logs, err := h.db.GetAdvisoriesByFarmer(c.Request.Context(), farmerID, limit)
	if err != nil {
		h.logger.Errorf("Get advisory history for farmer %d failed: %v", farmerID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}

// GetDeliveryAttempts returns the per-channel attempts of one request.
func (h *Handler) GetDeliveryAttempts(c *gin.Context) {
	requestID := c.Param("request_id")
	attempts, err := h.db.GetAttemptsByRequest(c.Request.Context(), requestID)
	if err != nil {
		h.logger.Errorf("Get attempts for request %s failed: %v", requestID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, attempts)
}

// GetMarketPrices returns the static price history for a crop.
func (h *Handler) GetMarketPrices(c *gin.Context) {
	crop := strings.ToLower(c.Param("crop"))
	price, ok := h.tables.MarketPrices[crop]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no market data for crop '" + crop + "'"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"crop": crop, "unit": price.Unit, "history": price.History})
}

// GetAppConfig exposes the reference data clients need for input forms.
func (h *Handler) GetAppConfig(c *gin.Context) {
	crops := make(map[string]gin.H, len(h.tables.Crops))
	for crop, info := range h.tables.Crops {
		crops[crop] = gin.H{"stages": info.Stages}
	}
	c.JSON(http.StatusOK, gin.H{
		"crops":      crops,
		"soil_types": h.tables.SoilTypes(),
		"languages":  h.tables.Templates.Languages(),
	})
}

// WatchDeliveries upgrades to a WebSocket and streams the farmer's delivery
// attempt outcomes.
func (h *Handler) WatchDeliveries(c *gin.Context) {
	farmerID, err := strconv.Atoi(c.Param("farmer_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid farmer id"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Errorf("WebSocket upgrade failed: %v", err)
		return
	}
	h.hub.AddConnection(farmerID, conn)

	go func() {
		defer func() {
			h.hub.RemoveConnection(farmerID, conn)
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
