package dto

// CompanyCreate is the POST /api/companies payload.
type CompanyCreate struct {
	Name    string  `json:"name"`
	Website *string `json:"website"`
	Address *string `json:"address"`
}

// CompanyPatch is the PUT /api/companies/:id payload.
type CompanyPatch struct {
	Name    *string `json:"name"`
	Website *string `json:"website"`
	Address *string `json:"address"`
}
