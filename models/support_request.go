package models

import "time"

type SupportRequest struct {
	ID               string    `json:"id"`
	ProductID        string    `json:"productId"`
	IssueDescription string    `json:"issueDescription"`
	Category         string    `json:"category"`
	Severity         string    `json:"severity"`
	Status           string    `json:"status"`
	EmailSentAt      time.Time `json:"emailSentAt"`
	CreatedAt        time.Time `json:"createdAt"`
}

type NewSupportRequest struct {
	ProductID        string `json:"productId" binding:"required"`
	IssueDescription string `json:"issueDescription" binding:"required"`
	Category         string `json:"category" binding:"required"`
	Severity         string `json:"severity" binding:"required,oneof=low medium high"`
	// Status is optional; requests default to "sent" when it is empty.
	Status string `json:"status" binding:"omitempty,oneof=sent in_progress resolved"`
}

type SupportRequestUpdate struct {
	IssueDescription *string `json:"issueDescription"`
	Category         *string `json:"category"`
	Severity         *string `json:"severity"`
	Status           *string `json:"status"`
}

type SupportRequestWithProduct struct {
	SupportRequest
	Product ProductWithBrand `json:"product"`
}
