package entity

import "time"

// MeetingStatusConfirmed is the default status for new meetings. Status is
// free text (confirmed, tentative, cancelled) rather than a closed enum.
const MeetingStatusConfirmed = "confirmed"

// Attendee is the trimmed contact form listed on a meeting.
type Attendee struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Meeting represents a calendar entry with optional company and attendees.
// The wire fields stay `start`/`end`; the columns are starts_at/ends_at.
type Meeting struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	Start       time.Time  `json:"start"`
	End         time.Time  `json:"end"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompanyID   *int64     `json:"company_id"`
	CompanyName *string    `json:"company_name"`
	Attendees   []Attendee `json:"attendees"`
}
