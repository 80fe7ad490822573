package dto

// ContactCreate is the POST /api/contacts payload.
type ContactCreate struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone"`
	CompanyID   *int64  `json:"company_id"`
	ContactType *string `json:"contact_type"`
	SalesStage  *string `json:"sales_stage"`
}

// ContactPatch is the PUT /api/contacts/:id payload. Only fields present in
// the request body are applied.
type ContactPatch struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	CompanyID   *int64  `json:"company_id"`
	ContactType *string `json:"contact_type"`
	SalesStage  *string `json:"sales_stage"`
}
