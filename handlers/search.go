package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/LuminLynx/ProductCareHub/models"
	"github.com/LuminLynx/ProductCareHub/warranty"
)

// Search runs a combined product and brand search. Queries shorter than
// two characters return empty results instead of matching everything.
func (a *API) Search(c *gin.Context) {
	query := c.Query("q")
	if len(query) < 2 {
		c.JSON(http.StatusOK, gin.H{
			"products": []models.ProductWithBrand{},
			"brands":   []models.Brand{},
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"products": a.store.SearchProducts(query),
		"brands":   a.store.SearchBrands(query),
	})
}

// GetStats returns the dashboard warranty counters.
func (a *API) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, warranty.Tally(a.store.GetAllProducts(), time.Now()))
}
