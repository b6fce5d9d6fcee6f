package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LuminLynx/ProductCareHub/models"
)

func (a *API) GetServiceProviders(c *gin.Context) {
	c.JSON(http.StatusOK, a.store.GetServiceProviders(c.Query("district")))
}

func (a *API) CreateServiceProvider(c *gin.Context) {
	var req models.NewServiceProvider
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, a.store.CreateServiceProvider(req))
}
