package entity

import "time"

// Company represents an organisation that contacts, interactions, meetings and
// tasks may attach to.
type Company struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Website       *string   `json:"website"`
	Address       *string   `json:"address"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	ContactsCount int       `json:"contacts_count"`
}

// CompanyRef is the trimmed form nested inside interactions.
type CompanyRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CompanyDetail is a company plus its interaction history, newest first.
type CompanyDetail struct {
	Company
	Interactions []Interaction `json:"interactions"`
}
