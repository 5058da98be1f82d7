package model

import "time"

// MessageStatus is the lifecycle state of an outbound message.
// "processing" is the claim-intermediate state the dispatcher places a row in
// so that concurrent dispatcher instances never pick it up twice.
type MessageStatus string

const (
	MessagePending    MessageStatus = "pending"
	MessageProcessing MessageStatus = "processing"
	MessageSent       MessageStatus = "sent"
	MessageFailed     MessageStatus = "failed"
)

// Message is one queued broadcast message for a single contact.
// sent_at is set if and only if status is "sent".
type Message struct {
	ID           int64         `json:"id"`
	ContactID    *int64        `json:"contact_id"`
	BatchID      *int64        `json:"batch_id"`
	Content      string        `json:"content"`
	Status       MessageStatus `json:"status"`
	ScheduledAt  *time.Time    `json:"scheduled_at"`
	SentAt       *time.Time    `json:"sent_at"`
	ErrorMessage *string       `json:"error_message"`
	CreatedAt    time.Time     `json:"created_at"`
}

// HistoryEntry is a message joined with its contact and batch names for display.
type HistoryEntry struct {
	Message
	ContactName  *string `json:"contact_name"`
	ContactPhone *string `json:"contact_phone"`
	BatchName    *string `json:"batch_name"`
}

// SendCampaignRequest enqueues one message per targeted contact.
// Exactly one of ContactIDs or BatchID must be set.
type SendCampaignRequest struct {
	ContactIDs  []int64    `json:"contact_ids"`
	BatchID     *int64     `json:"batch_id"`
	Content     string     `json:"content" binding:"required"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}

// PendingDelivery is a claimed message ready to be handed to the delivery client.
type PendingDelivery struct {
	MessageID int64
	ContactID *int64
	Phone     string
	Content   string
}
