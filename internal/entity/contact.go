package entity

import (
	"fmt"
	"strings"
	"time"
)

// ContactType classifies a contact within the sales funnel.
type ContactType string

// Contact type values; the wire and persisted forms are identical.
const (
	ContactTypeLead     ContactType = "LEAD"
	ContactTypeCustomer ContactType = "CUSTOMER"
	ContactTypeProspect ContactType = "PROSPECT"
	ContactTypeOther    ContactType = "OTHER"
)

// ContactTypes lists every valid contact type.
var ContactTypes = []ContactType{ContactTypeLead, ContactTypeCustomer, ContactTypeProspect, ContactTypeOther}

// ParseContactType validates a wire value, case-insensitively.
func ParseContactType(value string) (ContactType, error) {
	candidate := ContactType(strings.ToUpper(strings.TrimSpace(value)))
	for _, ct := range ContactTypes {
		if ct == candidate {
			return ct, nil
		}
	}
	return "", fmt.Errorf("unknown contact_type %q", value)
}

// SalesStage marks a contact's position in the sales pipeline.
type SalesStage string

const (
	StageProspecting   SalesStage = "PROSPECTING"
	StageQualification SalesStage = "QUALIFICATION"
	StageProposal      SalesStage = "PROPOSAL"
	StageNegotiation   SalesStage = "NEGOTIATION"
	StageClosedWon     SalesStage = "CLOSED_WON"
	StageClosedLost    SalesStage = "CLOSED_LOST"
)

// SalesStages lists every pipeline stage in funnel order.
var SalesStages = []SalesStage{
	StageProspecting,
	StageQualification,
	StageProposal,
	StageNegotiation,
	StageClosedWon,
	StageClosedLost,
}

// ParseSalesStage validates a wire value, case-insensitively.
func ParseSalesStage(value string) (SalesStage, error) {
	candidate := SalesStage(strings.ToUpper(strings.TrimSpace(value)))
	for _, stage := range SalesStages {
		if stage == candidate {
			return stage, nil
		}
	}
	return "", fmt.Errorf("unknown sales_stage %q", value)
}

// Contact represents a person tracked in the CRM. The JSON shape matches the
// legacy API: nullable fields serialize as explicit nulls, and the owning
// company is nested one level deep.
type Contact struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Phone       *string     `json:"phone"`
	ContactType ContactType `json:"contact_type"`
	SalesStage  *SalesStage `json:"sales_stage"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
	CompanyID   *int64      `json:"company_id"`
	Company     *Company    `json:"company"`
}

// ContactRef is the trimmed form nested inside interactions.
type ContactRef struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ContactDetail is a contact plus its interaction history, newest first.
type ContactDetail struct {
	Contact
	Interactions []Interaction `json:"interactions"`
}
