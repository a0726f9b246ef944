package query

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/medebd/medicine-api/catalogparser/entities"
	"github.com/medebd/medicine-api/interfaces"
)

// fold performs Unicode case folding; brand and generic names are not
// ASCII-only, so strings.ToLower is not enough here. A cases.Caser is
// stateful, so one is created per call instead of being shared.
func fold(s string) string {
	return cases.Fold().String(s)
}

// SearchMedicinesByName returns the total number of medicines whose brand
// name contains name (case-insensitive) and one ranked page of them. An
// empty name matches everything.
func SearchMedicinesByName(store interfaces.CatalogStore, name string, p Pagination) (int, []entities.Medicine) {
	medicines := store.GetMedicines()

	var matches []entities.Medicine
	if name == "" {
		matches = medicines
	} else {
		needle := fold(name)
		for _, med := range medicines {
			if strings.Contains(fold(med.BrandName), needle) {
				matches = append(matches, med)
			}
		}
	}

	return len(matches), PageSlice(RankMedicines(matches), p.Skip, p.Limit)
}

// SearchGenericsBySymptom returns the generics with at least one indication
// containing symptom (case-insensitive) and one ranked page of them. An
// empty symptom matches everything.
func SearchGenericsBySymptom(store interfaces.CatalogStore, symptom string, p Pagination) (int, []entities.Generic) {
	generics := store.GetGenerics()

	var matches []entities.Generic
	if symptom == "" {
		matches = generics
	} else {
		needle := fold(symptom)
		for _, generic := range generics {
			for _, indication := range generic.Indication {
				if strings.Contains(fold(indication), needle) {
					matches = append(matches, generic)
					break
				}
			}
		}
	}

	return len(matches), PageSlice(RankGenerics(matches), p.Skip, p.Limit)
}

// SearchMedicinesByGenericID returns the medicines referencing the generic
// id, ranked and paged.
func SearchMedicinesByGenericID(store interfaces.CatalogStore, genericID int, p Pagination) (int, []entities.Medicine) {
	matches := store.GetMedicinesByGeneric()[genericID]
	return len(matches), PageSlice(RankMedicines(matches), p.Skip, p.Limit)
}

// SearchMedicinesByCompanyID returns the medicines made by the company,
// ranked and paged.
func SearchMedicinesByCompanyID(store interfaces.CatalogStore, companyID int, p Pagination) (int, []entities.Medicine) {
	matches := store.GetMedicinesByCompany()[companyID]
	return len(matches), PageSlice(RankMedicines(matches), p.Skip, p.Limit)
}

// ListGenerics returns the full generics count and one page of summaries in
// catalog order. The whole collection is materialized and sliced in memory,
// without ranking; this endpoint has always worked that way and clients
// depend on the stable ordering. It does not scale past an in-memory
// catalog.
func ListGenerics(store interfaces.CatalogStore, p Pagination) (int, []entities.GenericSummary) {
	generics := store.GetGenerics()

	page := PageSlice(generics, p.Skip, p.Limit)
	summaries := make([]entities.GenericSummary, 0, len(page))
	for _, generic := range page {
		summaries = append(summaries, SummarizeGeneric(generic))
	}

	return len(generics), summaries
}

// ListCompanies returns the full companies count and one page in catalog
// order, using the same materialize-then-paginate mode as ListGenerics.
func ListCompanies(store interfaces.CatalogStore, p Pagination) (int, []entities.Company) {
	companies := store.GetCompanies()
	return len(companies), PageSlice(companies, p.Skip, p.Limit)
}
