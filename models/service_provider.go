package models

// ServiceProvider is a third-party repair company listed in the provider
// directory, for products outside their manufacturer warranty.
type ServiceProvider struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	District    string   `json:"district"`
	Phone       string   `json:"phone"`
	Email       string   `json:"email"`
	Website     *string  `json:"website"`
	Specialties []string `json:"specialties"`
}

type NewServiceProvider struct {
	Name        string   `json:"name" binding:"required"`
	District    string   `json:"district" binding:"required"`
	Phone       string   `json:"phone" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	Website     *string  `json:"website"`
	Specialties []string `json:"specialties"`
}
