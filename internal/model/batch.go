package model

import "time"

// Batch is a named group of contacts used as a broadcast target.
// Batch names are unique; the store enforces it.
type Batch struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateBatchRequest is used for creating a new batch
type CreateBatchRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}
