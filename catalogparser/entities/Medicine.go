package entities

// Medicine represents a single branded pharmaceutical product from the catalog.
// GenericID is carried as a string for dataset parity (the upstream dumps store
// it that way); GenericRef holds the value parsed at catalog load time and is
// zero when the brand has no generic reference.
type Medicine struct {
	BrandID    int    `json:"brand_id"`
	BrandName  string `json:"brand_name"`
	Form       string `json:"form"`
	GenericID  string `json:"generic_id"`
	GenericRef int    `json:"-"`
	CompanyID  int    `json:"company_id"`
	PackSize   string `json:"packsize"`
	Price      string `json:"price"`
	Strength   string `json:"strength"`
}
