package entity

import "time"

// Notification is a system message surfaced in the UI badge. Link columns are
// plain ids without foreign keys, so they may dangle once the linked row is
// deleted.
type Notification struct {
	ID                int64     `json:"id"`
	Message           string    `json:"message"`
	IsRead            bool      `json:"is_read"`
	CreatedAt         time.Time `json:"created_at"`
	LinkContactID     *int64    `json:"link_contact_id"`
	LinkCompanyID     *int64    `json:"link_company_id"`
	LinkInteractionID *int64    `json:"link_interaction_id"`
}
