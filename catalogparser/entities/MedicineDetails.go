package entities

// MedicineDetails is the denormalized response row assembled per request:
// the medicine joined with its company name and generic record. It is never
// persisted. Medicine is a pointer so that a symptom match whose generic has
// no brand on file surfaces only the generic fields (the embedded nil pointer
// drops the medicine fields from the JSON output).
type MedicineDetails struct {
	*Medicine
	CompanyName    *string   `json:"company_name"`
	GenericDetails []Generic `json:"generic_details"`
}
