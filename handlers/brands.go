package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LuminLynx/ProductCareHub/models"
)

func (a *API) GetBrands(c *gin.Context) {
	c.JSON(http.StatusOK, a.store.GetAllBrands())
}

func (a *API) GetBrand(c *gin.Context) {
	brand, ok := a.store.GetBrand(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Brand not found"})
		return
	}
	c.JSON(http.StatusOK, brand)
}

func (a *API) CreateBrand(c *gin.Context) {
	var req models.NewBrand
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, a.store.CreateBrand(req))
}
