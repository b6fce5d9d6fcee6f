package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LuminLynx/ProductCareHub/models"
)

func (a *API) GetProductReviews(c *gin.Context) {
	c.JSON(http.StatusOK, a.store.GetReviewsByProduct(c.Param("id")))
}

func (a *API) CreateReview(c *gin.Context) {
	var req models.NewReview
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, a.store.CreateReview(req))
}

// GetCommunityReviews lists every review joined with its product and
// brand. Reviews whose product cannot be resolved are skipped.
func (a *API) GetCommunityReviews(c *gin.Context) {
	reviews := a.store.GetAllReviews()
	joined := []models.ReviewWithProduct{}
	for _, review := range reviews {
		product, ok := a.store.GetProductWithBrand(review.ProductID)
		if !ok {
			continue
		}
		joined = append(joined, models.ReviewWithProduct{Review: review, Product: product})
	}
	c.JSON(http.StatusOK, joined)
}
