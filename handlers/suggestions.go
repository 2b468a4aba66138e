package handlers

import (
	"fmt"
	"net/http"

	"marketecho/metrics"
	"marketecho/models"
	"marketecho/services"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

// SuggestionHandler handles marketing suggestion requests
type SuggestionHandler struct {
	suggestionService *services.SuggestionService
}

func NewSuggestionHandler(suggestionService *services.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{
		suggestionService: suggestionService,
	}
}

// CreateSuggestions always answers 200; failures are reported as sentinel
// suggestions in the body.
func (h *SuggestionHandler) CreateSuggestions(c *gin.Context) {
	var req models.SuggestionRequest

	var result services.SuggestionResult
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warnf("Failed to bind suggestions request: %v", err)
		result = services.UnavailableResult(fmt.Errorf("invalid request body: %w", err))
	} else {
		result = h.suggestionService.Suggest(c.Request.Context(), req.Brand, req.Category)
	}

	metrics.SuggestionsTotal.WithLabelValues(string(result.Outcome)).Inc()
	c.JSON(http.StatusOK, models.SuggestionsResponse{Suggestions: result.Suggestions})
}
