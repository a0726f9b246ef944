package entities

// Generic represents the chemical identity shared by one or more brands.
// Indication lists the symptoms and conditions the generic is used for.
type Generic struct {
	GenericID         int      `json:"generic_id"`
	GenericName       string   `json:"generic_name"`
	GenericNameBangla string   `json:"generic_name_bangla"`
	Indication        []string `json:"indication"`
}

// GenericSummary is the projection served by the generics list endpoint.
// GenericNameBangla is nil when the stored value is blank or a placeholder.
type GenericSummary struct {
	GenericID         int     `json:"generic_id"`
	GenericName       string  `json:"generic_name"`
	GenericNameBangla *string `json:"generic_name_bangla"`
}
