package model

import "time"

// Contact represents a messaging recipient. A contact belongs to at most one batch.
type Contact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	BatchID   *int64    `json:"batch_id"` // Pointer for optional field
	Tags      []string  `json:"tags"`
	Category  string    `json:"category"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateContactRequest is used for creating a new contact
type CreateContactRequest struct {
	Name     string   `json:"name" binding:"required"`
	Phone    string   `json:"phone" binding:"required"`
	BatchID  *int64   `json:"batch_id"`
	Tags     []string `json:"tags"`
	Category string   `json:"category"`
	Notes    string   `json:"notes"`
}

// BulkCreateContactsRequest is the payload of the spreadsheet import path.
type BulkCreateContactsRequest struct {
	Contacts []CreateContactRequest `json:"contacts" binding:"required,min=1,dive"`
}
