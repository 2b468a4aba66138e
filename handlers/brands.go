package handlers

import (
	"net/http"

	"marketecho/metrics"
	"marketecho/models"
	"marketecho/services"
	"marketecho/utils"

	"github.com/gin-gonic/gin"
)

// BrandHandler handles brand lookup requests
type BrandHandler struct {
	dataset    *services.DatasetService
	sampleSize int
}

// NewBrandHandler creates a new brand handler. sampleSize is the number of
// valid keys returned with a not-found response; 0 omits them.
func NewBrandHandler(dataset *services.DatasetService, sampleSize int) *BrandHandler {
	return &BrandHandler{
		dataset:    dataset,
		sampleSize: sampleSize,
	}
}

// GetBrand resolves the name query parameter to a brand record
func (h *BrandHandler) GetBrand(c *gin.Context) {
	brandName := c.Query("name")
	if brandName == "" {
		metrics.BrandLookupsTotal.WithLabelValues("bad_request").Inc()
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Brand name is required"})
		return
	}

	record, ok := h.dataset.Lookup(utils.NormalizeBrandKey(brandName))
	if !ok {
		metrics.BrandLookupsTotal.WithLabelValues("not_found").Inc()
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:     "Brand not found",
			Available: h.dataset.Keys(h.sampleSize),
		})
		return
	}

	metrics.BrandLookupsTotal.WithLabelValues("found").Inc()
	c.JSON(http.StatusOK, record)
}
