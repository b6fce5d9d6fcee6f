// Package handlers is the REST boundary: it validates payloads, maps
// missing entities to 404s and delegates everything else to the store.
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/LuminLynx/ProductCareHub/services"
	"github.com/LuminLynx/ProductCareHub/storage"
)

// API bundles the dependencies the handlers need. Constructed once in main
// with an explicit store instance; tests build their own.
type API struct {
	store   *storage.Store
	uploads *services.UploadService
	mailer  *services.Mailer
}

func NewAPI(store *storage.Store, uploads *services.UploadService, mailer *services.Mailer) *API {
	return &API{store: store, uploads: uploads, mailer: mailer}
}

// Register mounts all API routes on the router.
func (a *API) Register(router *gin.Engine) {
	api := router.Group("/api")
	{
		brands := api.Group("/brands")
		{
			brands.GET("", a.GetBrands)
			brands.GET("/:id", a.GetBrand)
			brands.POST("", a.CreateBrand)
		}

		products := api.Group("/products")
		{
			products.GET("", a.GetProducts)
			products.GET("/:id", a.GetProduct)
			products.POST("", a.CreateProduct)
			products.PATCH("/:id", a.UpdateProduct)
			products.DELETE("/:id", a.DeleteProduct)
			products.GET("/:id/reviews", a.GetProductReviews)
			products.GET("/:id/support-requests", a.GetProductSupportRequests)
		}

		api.POST("/reviews", a.CreateReview)
		api.GET("/community/reviews", a.GetCommunityReviews)

		api.POST("/support-requests", a.CreateSupportRequest)
		api.PATCH("/support-requests/:id", a.UpdateSupportRequest)
		api.GET("/support-history", a.GetSupportHistory)

		api.GET("/search", a.Search)
		api.GET("/stats", a.GetStats)

		api.GET("/service-providers", a.GetServiceProviders)
		api.POST("/service-providers", a.CreateServiceProvider)
		api.GET("/insurance-partners", a.GetInsurancePartners)
	}

	if a.uploads != nil && a.uploads.ServesLocalFiles() {
		router.Static("/uploads", a.uploads.LocalDir())
	}
}
