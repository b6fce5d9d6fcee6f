package models

import "time"

type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Rating    int       `json:"rating"`
	Title     *string   `json:"title"`
	Content   *string   `json:"content"`
	Recommend bool      `json:"recommend"`
	Pros      []string  `json:"pros"`
	Cons      []string  `json:"cons"`
	CreatedAt time.Time `json:"createdAt"`
}

type NewReview struct {
	ProductID string   `json:"productId" binding:"required"`
	Rating    int      `json:"rating" binding:"required,min=1,max=5"`
	Title     *string  `json:"title"`
	Content   *string  `json:"content"`
	Recommend bool     `json:"recommend"`
	Pros      []string `json:"pros"`
	Cons      []string `json:"cons"`
}

// ReviewWithProduct backs the community feed, where every review is shown
// next to the product it rates.
type ReviewWithProduct struct {
	Review
	Product ProductWithBrand `json:"product"`
}
