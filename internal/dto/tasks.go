package dto

// TaskCreate is the POST /api/tasks payload. At least one of
// ContactID/CompanyID must be set.
type TaskCreate struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	Status      *string `json:"status"`
	ContactID   *int64  `json:"contact_id"`
	CompanyID   *int64  `json:"company_id"`
}

// TaskPatch is the PUT /api/tasks/:id payload.
type TaskPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	Status      *string `json:"status"`
	ContactID   *int64  `json:"contact_id"`
	CompanyID   *int64  `json:"company_id"`
}

// TaskFilter carries the GET /api/tasks query parameters; set fields are
// AND-ed together.
type TaskFilter struct {
	ContactID *int64
	CompanyID *int64
	Status    *string
}
