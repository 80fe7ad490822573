package entity

import "time"

// Interaction records a touchpoint (call, email, meeting, note) against a
// contact and/or a company. It carries no created_at/updated_at pair; the
// interaction_date is the only timestamp the legacy schema defines.
type Interaction struct {
	ID              int64       `json:"id"`
	InteractionType string      `json:"interaction_type"`
	Notes           *string     `json:"notes"`
	InteractionDate time.Time   `json:"interaction_date"`
	ContactID       *int64      `json:"contact_id"`
	CompanyID       *int64      `json:"company_id"`
	Contact         *ContactRef `json:"contact"`
	Company         *CompanyRef `json:"company"`
}

// CanonicalInteractionTypes seeds the by-type report so the dashboard always
// sees the four well-known categories, even at zero.
var CanonicalInteractionTypes = []string{"Call", "Email", "Meeting", "Note"}
