package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LuminLynx/ProductCareHub/models"
	"github.com/LuminLynx/ProductCareHub/services"
)

func (a *API) GetProductSupportRequests(c *gin.Context) {
	c.JSON(http.StatusOK, a.store.GetSupportRequestsByProduct(c.Param("id")))
}

// CreateSupportRequest files a warranty claim: it generates the claim
// email for the product's brand, logs it, optionally hands it to the
// mailer, and persists the request record. Persistence does not depend on
// delivery succeeding.
func (a *API) CreateSupportRequest(c *gin.Context) {
	var req models.NewSupportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, ok := a.store.GetProductWithBrand(req.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	email := services.GenerateClaimEmail(product.Product, product.Brand, services.ClaimIssue{
		Category:    req.Category,
		Severity:    req.Severity,
		Description: req.IssueDescription,
	})

	log.Printf("warranty claim email for product %s\nTo: %s\nSubject: %s\n%s",
		product.ID, email.To, email.Subject, email.Body)

	emailSent := false
	if a.mailer != nil {
		if err := a.mailer.Send(email); err != nil {
			log.Printf("failed to deliver claim email: %v", err)
		} else {
			emailSent = true
		}
	}

	request := a.store.CreateSupportRequest(req)

	c.JSON(http.StatusCreated, gin.H{
		"supportRequest": request,
		"emailSent":      emailSent,
		"emailDetails": gin.H{
			"to":      email.To,
			"subject": email.Subject,
		},
	})
}

func (a *API) UpdateSupportRequest(c *gin.Context) {
	var req models.SupportRequestUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	request, ok := a.store.UpdateSupportRequest(c.Param("id"), req)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Support request not found"})
		return
	}
	c.JSON(http.StatusOK, request)
}

// GetSupportHistory lists every support request joined with its product
// and brand, newest first.
func (a *API) GetSupportHistory(c *gin.Context) {
	requests := a.store.GetAllSupportRequests()
	joined := []models.SupportRequestWithProduct{}
	for _, request := range requests {
		product, ok := a.store.GetProductWithBrand(request.ProductID)
		if !ok {
			continue
		}
		joined = append(joined, models.SupportRequestWithProduct{SupportRequest: request, Product: product})
	}
	c.JSON(http.StatusOK, joined)
}
