package entities

// Catalog is one immutable snapshot of the reference dataset together with
// the lookup indexes the query pipeline needs. A new Catalog is built on
// every load and swapped into the container atomically.
type Catalog struct {
	Medicines []Medicine
	Generics  []Generic
	Companies []Company

	// Point-lookup indexes
	BrandIndex   map[int]Medicine
	GenericIndex map[int]Generic
	CompanyIndex map[int]Company

	// Reverse indexes, each slice ordered by ascending brand id
	MedicinesByGeneric map[int][]Medicine
	MedicinesByCompany map[int][]Medicine
}
