package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/LuminLynx/ProductCareHub/models"
	"github.com/LuminLynx/ProductCareHub/warranty"
)

// maxPhotoUploads limits how many photo_<n> form fields are read.
const maxPhotoUploads = 5

// GetProducts lists brand-joined products, newest purchase first. Optional
// query params narrow the list: q (text), status (valid/expiring/expired),
// brand (brand id), min_rating.
func (a *API) GetProducts(c *gin.Context) {
	products := a.store.GetAllProducts()

	opts := warranty.FilterOptions{
		Query:   c.Query("q"),
		Status:  warranty.Status(c.Query("status")),
		BrandID: c.Query("brand"),
	}
	if raw := c.Query("min_rating"); raw != "" {
		minRating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_rating"})
			return
		}
		opts.MinRating = minRating
		opts.RatingOf = func(productID string) float64 {
			return warranty.AverageRating(a.store.GetReviewsByProduct(productID))
		}
	}

	c.JSON(http.StatusOK, warranty.FilterProducts(products, opts, time.Now()))
}

func (a *API) GetProduct(c *gin.Context) {
	product, ok := a.store.GetProductWithDetails(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct registers a product from a multipart form: text fields
// plus an optional receipt file and up to five photo_<n> files, which are
// resolved to URLs before the store sees them.
func (a *API) CreateProduct(c *gin.Context) {
	name := c.PostForm("name")
	model := c.PostForm("model")
	category := c.PostForm("category")
	brandID := c.PostForm("brandId")
	if name == "" || model == "" || category == "" || brandID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, model, category and brandId are required"})
		return
	}

	if _, ok := a.store.GetBrand(brandID); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown brandId"})
		return
	}

	purchaseDate, err := parseDate(c.PostForm("purchaseDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid purchaseDate"})
		return
	}

	np := models.NewProduct{
		BrandID:      brandID,
		Name:         name,
		Model:        model,
		Category:     category,
		PurchaseDate: purchaseDate,
		PhotoURLs:    []string{},
	}
	if v := c.PostForm("serialNumber"); v != "" {
		np.SerialNumber = &v
	}
	if v := c.PostForm("notes"); v != "" {
		np.Notes = &v
	}

	if header, err := c.FormFile("receipt"); err == nil {
		url, err := a.saveUpload(header, "receipt")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		np.ReceiptURL = &url
	}
	for i := 0; i < maxPhotoUploads; i++ {
		field := fmt.Sprintf("photo_%d", i)
		header, err := c.FormFile(field)
		if err != nil {
			continue
		}
		url, err := a.saveUpload(header, field)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		np.PhotoURLs = append(np.PhotoURLs, url)
	}

	c.JSON(http.StatusCreated, a.store.CreateProduct(np))
}

func (a *API) UpdateProduct(c *gin.Context) {
	var req models.ProductUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	product, ok := a.store.UpdateProduct(c.Param("id"), req)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (a *API) DeleteProduct(c *gin.Context) {
	if !a.store.DeleteProduct(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (a *API) saveUpload(header *multipart.FileHeader, field string) (string, error) {
	if a.uploads == nil {
		return "", errors.New("file uploads are not configured")
	}
	return a.uploads.Save(header, field)
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
