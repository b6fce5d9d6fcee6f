package models

import "time"

type Product struct {
	ID           string    `json:"id"`
	BrandID      string    `json:"brandId"`
	Name         string    `json:"name"`
	Model        string    `json:"model"`
	SerialNumber *string   `json:"serialNumber"`
	Category     string    `json:"category"`
	PurchaseDate time.Time `json:"purchaseDate"`
	// WarrantyExpiration is fixed when the product is registered. Editing
	// purchaseDate afterwards does not recompute it.
	WarrantyExpiration time.Time `json:"warrantyExpiration"`
	Notes              *string   `json:"notes"`
	ReceiptURL         *string   `json:"receiptUrl"`
	PhotoURLs          []string  `json:"photoUrls"`
}

type NewProduct struct {
	BrandID      string
	Name         string
	Model        string
	SerialNumber *string
	Category     string
	PurchaseDate time.Time
	Notes        *string
	ReceiptURL   *string
	PhotoURLs    []string
}

// ProductUpdate carries a partial update; nil fields are left untouched.
type ProductUpdate struct {
	BrandID      *string    `json:"brandId"`
	Name         *string    `json:"name"`
	Model        *string    `json:"model"`
	SerialNumber *string    `json:"serialNumber"`
	Category     *string    `json:"category"`
	PurchaseDate *time.Time `json:"purchaseDate"`
	Notes        *string    `json:"notes"`
	ReceiptURL   *string    `json:"receiptUrl"`
	PhotoURLs    *[]string  `json:"photoUrls"`
}

type ProductWithBrand struct {
	Product
	Brand Brand `json:"brand"`
}

type ProductWithDetails struct {
	Product
	Brand           Brand            `json:"brand"`
	Reviews         []Review         `json:"reviews"`
	SupportRequests []SupportRequest `json:"supportRequests"`
}
