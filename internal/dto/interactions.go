package dto

// InteractionCreate is the POST /api/interactions payload. At least one of
// ContactID/CompanyID must be set; the handler enforces it, not the schema.
type InteractionCreate struct {
	InteractionType string  `json:"interaction_type"`
	Notes           *string `json:"notes"`
	InteractionDate *string `json:"interaction_date"`
	ContactID       *int64  `json:"contact_id"`
	CompanyID       *int64  `json:"company_id"`
}
