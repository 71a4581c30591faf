package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/novahealth/riskengine/internal/models"
	"github.com/novahealth/riskengine/internal/platform/logger"
	"github.com/novahealth/riskengine/internal/predict"
)

// HealthHandler exposes the assessment endpoints over HTTP
type HealthHandler struct {
	assessor *HealthAssessor
	modelSet *predict.ModelSet
	log      *logger.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(assessor *HealthAssessor, modelSet *predict.ModelSet, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		assessor: assessor,
		modelSet: modelSet,
		log:      log,
	}
}

// RegisterRoutes attaches all endpoints to the router
func (h *HealthHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.HandleRoot)
	router.POST("/predict/health-risk", h.HandleHealthRisk)
	router.POST("/predict/obesity", h.HandleObesity)
}

// HandleRoot reports service health and which model artifacts loaded
func (h *HealthHandler) HandleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "healthy",
		"service":       "NovaHealth Risk Engine",
		"version":       "1.0.0",
		"models_loaded": h.modelSet.Loaded(),
	})
}

// HandleHealthRisk runs the full assessment for one request body
func (h *HealthHandler) HandleHealthRisk(c *gin.Context) {
	var req models.HealthRiskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	assessment, err := h.assessor.Assess(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrInvalidProfile) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.log.Error("health risk assessment failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("prediction error: %v", err)})
		return
	}

	c.JSON(http.StatusOK, assessment)
}

// obesityOnlyRequest is the body for the obesity convenience endpoint
type obesityOnlyRequest struct {
	User      models.UserProfile       `json:"user"`
	Lifestyle models.LifestyleSnapshot `json:"lifestyle"`
}

// HandleObesity runs only the obesity classification branch
func (h *HealthHandler) HandleObesity(c *gin.Context) {
	var req obesityOnlyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	full := models.HealthRiskRequest{
		UserProfile:   req.User,
		LifestyleData: req.Lifestyle,
	}
	assessment, err := h.assessor.Assess(c.Request.Context(), &full)
	if err != nil {
		if errors.Is(err, ErrInvalidProfile) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.log.Error("obesity prediction failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("prediction error: %v", err)})
		return
	}

	c.JSON(http.StatusOK, assessment.ObesityRisk)
}
