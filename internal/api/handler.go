package api

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strconv"
	"time"

	"atelier-service/internal/models"
	"atelier-service/internal/service"
	"atelier-service/internal/store"
	"atelier-service/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler contains HTTP handlers
type Handler struct {
	catalog       *store.Store
	filterService *service.FilterService
	offerService  *service.OfferService
	rewardService *service.RewardService
	copyService   *service.CopyService
	tryOnService  *service.TryOnService
}

// NewHandler creates a new HTTP handler
func NewHandler(
	catalog *store.Store,
	filterService *service.FilterService,
	offerService *service.OfferService,
	rewardService *service.RewardService,
	copyService *service.CopyService,
	tryOnService *service.TryOnService,
) *Handler {
	return &Handler{
		catalog:       catalog,
		filterService: filterService,
		offerService:  offerService,
		rewardService: rewardService,
		copyService:   copyService,
		tryOnService:  tryOnService,
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/products", h.listProducts)
		v1.GET("/products/:id", h.getProduct)
		v1.POST("/catalog/query", h.queryCatalog)

		v1.POST("/offers", h.createOffer)
		v1.GET("/offers/:id", h.getOffer)
		v1.POST("/offers/:id/purchase", h.purchaseOffer)

		v1.POST("/sessions", h.createSession)
		v1.GET("/sessions/:id", h.getSession)
		v1.POST("/sessions/:id/plays/number", h.playNumberMatch)
		v1.POST("/sessions/:id/plays/dice", h.playPairedDraw)
		v1.POST("/sessions/:id/plays/wheel", h.playWheel)
		v1.POST("/sessions/:id/redeem", h.redeem)

		v1.POST("/copy", h.generateCopy)
		v1.POST("/tryon", h.tryOn)
	}
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// readinessCheck handles readiness check requests
func (h *Handler) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Unix(),
	})
}

// listProducts returns the catalog, optionally one partition
func (h *Handler) listProducts(c *gin.Context) {
	var products []models.Product

	switch models.Partition(c.Query("partition")) {
	case models.PartitionStandard:
		products = h.catalog.Standard()
	case models.PartitionArchive:
		products = h.catalog.Archive()
	default:
		products = h.catalog.AllProducts()
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// getProduct returns one product by id
func (h *Handler) getProduct(c *gin.Context) {
	product, err := h.catalog.ByID(c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// queryCatalog runs a filter selection against the catalog
func (h *Handler) queryCatalog(c *gin.Context) {
	var sel models.FilterSelection
	if err := c.ShouldBindJSON(&sel); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	products, err := h.filterService.Query(c.Request.Context(), sel)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid filter selection",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// createOffer creates a timed offer and starts its countdown
func (h *Handler) createOffer(c *gin.Context) {
	offer, err := h.offerService.Create(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, offer)
}

// getOffer returns an offer snapshot with its current price
func (h *Handler) getOffer(c *gin.Context) {
	offer, err := h.offerService.Get(c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	price, err := h.offerService.CurrentPrice(offer.ID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"offer":         offer,
		"current_price": price,
		"purchasable":   offer.RemainingSeconds > 0,
	})
}

// purchaseOffer accepts a purchase against a live offer
func (h *Handler) purchaseOffer(c *gin.Context) {
	offer, price, err := h.offerService.Purchase(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"offer": offer,
		"price": price,
	})
}

// createSession opens a reward session
func (h *Handler) createSession(c *gin.Context) {
	c.JSON(http.StatusCreated, h.rewardService.CreateSession())
}

// getSession returns a session snapshot
func (h *Handler) getSession(c *gin.Context) {
	session, err := h.rewardService.GetSession(c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

type numberPlayRequest struct {
	Guess int `json:"guess" binding:"required,min=1,max=10"`
}

// playNumberMatch plays the number-match game
func (h *Handler) playNumberMatch(c *gin.Context) {
	var req numberPlayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	outcome, err := h.rewardService.PlayNumberMatch(c.Request.Context(), c.Param("id"), req.Guess)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, outcome)
}

// playPairedDraw plays the paired-draw game
func (h *Handler) playPairedDraw(c *gin.Context) {
	outcome, err := h.rewardService.PlayPairedDraw(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, outcome)
}

// playWheel plays the wheel game
func (h *Handler) playWheel(c *gin.Context) {
	outcome, err := h.rewardService.PlayWheel(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, outcome)
}

type redeemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// redeem exchanges Credits for an archive product
func (h *Handler) redeem(c *gin.Context) {
	var req redeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	session, err := h.rewardService.Redeem(c.Request.Context(), c.Param("id"), req.ProductID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

type copyRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// generateCopy returns marketing copy, degraded to fallback text on
// generator failure
func (h *Handler) generateCopy(c *gin.Context) {
	var req copyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, h.copyService.Generate(c.Request.Context(), req.Prompt))
}

type tryOnRequest struct {
	Prompt string `json:"prompt" binding:"required"`
	Frame  string `json:"frame" binding:"required"`
}

// tryOn describes an uploaded still frame against a prompt
func (h *Handler) tryOn(c *gin.Context) {
	var req tryOnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	frame, err := base64.StdEncoding.DecodeString(req.Frame)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Frame must be base64-encoded",
		})
		return
	}

	c.JSON(http.StatusOK, h.tryOnService.DescribeFrame(c.Request.Context(), req.Prompt, frame))
}

// writeError maps domain errors to HTTP statuses
func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrExpiredOffer):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrInsufficientBalance):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
