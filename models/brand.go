package models

// Brand is a manufacturer contact record. Brands are immutable after
// creation and are never deleted.
type Brand struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	SupportEmail string  `json:"supportEmail"`
	SupportPhone *string `json:"supportPhone"`
	Website      *string `json:"website"`
	Category     string  `json:"category"`
}

type NewBrand struct {
	Name         string  `json:"name" binding:"required"`
	SupportEmail string  `json:"supportEmail" binding:"required,email"`
	SupportPhone *string `json:"supportPhone"`
	Website      *string `json:"website"`
	Category     string  `json:"category" binding:"required"`
}
