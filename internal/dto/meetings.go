package dto

// MeetingCreate is the POST /api/meetings payload. Start/End arrive as
// ISO-8601 strings and are parsed server-side.
type MeetingCreate struct {
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Location    *string  `json:"location"`
	Start       string   `json:"start"`
	End         string   `json:"end"`
	Status      *string  `json:"status"`
	CompanyID   *int64   `json:"company_id"`
	Attendees   []int64  `json:"attendees"`
}

// MeetingPatch is the PUT /api/meetings/:id payload. A present Attendees list
// replaces the attendance wholesale.
type MeetingPatch struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Location    *string  `json:"location"`
	Start       *string  `json:"start"`
	End         *string  `json:"end"`
	Status      *string  `json:"status"`
	CompanyID   *int64   `json:"company_id"`
	Attendees   *[]int64 `json:"attendees"`
}
