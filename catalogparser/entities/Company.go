package entities

// Company represents a manufacturer referenced by medicines.
type Company struct {
	CompanyID   int    `json:"company_id"`
	CompanyName string `json:"company_name"`
}
