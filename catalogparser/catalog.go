package catalogparser

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/medebd/medicine-api/catalogparser/entities"
	"github.com/medebd/medicine-api/logging"
)

// validateMedicine rejects rows the query pipeline cannot serve. The generic
// reference is parsed here, at the store boundary, so the rest of the code
// only ever sees a typed id; a non-numeric, non-empty generic_id rejects the
// row instead of propagating parse ambiguity into the lookups.
func validateMedicine(m *entities.Medicine) error {
	if m.BrandID <= 0 {
		return fmt.Errorf("invalid brand id: %d", m.BrandID)
	}
	if strings.TrimSpace(m.BrandName) == "" {
		return fmt.Errorf("missing brand name")
	}

	genericID := strings.TrimSpace(m.GenericID)
	if genericID != "" {
		ref, err := strconv.Atoi(genericID)
		if err != nil || ref <= 0 {
			return fmt.Errorf("non-numeric generic_id %q", m.GenericID)
		}
		m.GenericRef = ref
	}

	return nil
}

func validateGeneric(g *entities.Generic) error {
	if g.GenericID <= 0 {
		return fmt.Errorf("invalid generic id: %d", g.GenericID)
	}
	if strings.TrimSpace(g.GenericName) == "" {
		return fmt.Errorf("missing generic name")
	}
	return nil
}

func validateCompany(c *entities.Company) error {
	if c.CompanyID <= 0 {
		return fmt.Errorf("invalid company id: %d", c.CompanyID)
	}
	if strings.TrimSpace(c.CompanyName) == "" {
		return fmt.Errorf("missing company name")
	}
	return nil
}

// BuildCatalog validates the raw rows and assembles one catalog snapshot
// with all lookup indexes. Invalid rows are skipped with a warning; a bad
// row in the dataset must not take the whole catalog down.
func BuildCatalog(medicines []entities.Medicine, generics []entities.Generic, companies []entities.Company) *entities.Catalog {
	catalog := &entities.Catalog{
		Medicines:          make([]entities.Medicine, 0, len(medicines)),
		Generics:           make([]entities.Generic, 0, len(generics)),
		Companies:          make([]entities.Company, 0, len(companies)),
		BrandIndex:         make(map[int]entities.Medicine, len(medicines)),
		GenericIndex:       make(map[int]entities.Generic, len(generics)),
		CompanyIndex:       make(map[int]entities.Company, len(companies)),
		MedicinesByGeneric: make(map[int][]entities.Medicine),
		MedicinesByCompany: make(map[int][]entities.Medicine),
	}

	for i := range generics {
		if err := validateGeneric(&generics[i]); err != nil {
			logging.Warn("Skipping invalid generic", "error", err)
			continue
		}
		catalog.Generics = append(catalog.Generics, generics[i])
		catalog.GenericIndex[generics[i].GenericID] = generics[i]
	}

	for i := range companies {
		if err := validateCompany(&companies[i]); err != nil {
			logging.Warn("Skipping invalid company", "error", err)
			continue
		}
		catalog.Companies = append(catalog.Companies, companies[i])
		catalog.CompanyIndex[companies[i].CompanyID] = companies[i]
	}

	for i := range medicines {
		med := medicines[i]
		if err := validateMedicine(&med); err != nil {
			logging.Warn("Skipping invalid medicine", "error", err, "brand_id", med.BrandID)
			continue
		}

		catalog.Medicines = append(catalog.Medicines, med)
		catalog.BrandIndex[med.BrandID] = med

		if med.GenericRef != 0 {
			catalog.MedicinesByGeneric[med.GenericRef] = append(catalog.MedicinesByGeneric[med.GenericRef], med)
		}
		if med.CompanyID != 0 {
			catalog.MedicinesByCompany[med.CompanyID] = append(catalog.MedicinesByCompany[med.CompanyID], med)
		}
	}

	// Keep the reverse indexes in ascending brand id order so "pick one
	// medicine for a generic" resolves the same row on every request
	for _, meds := range catalog.MedicinesByGeneric {
		sort.Slice(meds, func(i, j int) bool { return meds[i].BrandID < meds[j].BrandID })
	}
	for _, meds := range catalog.MedicinesByCompany {
		sort.Slice(meds, func(i, j int) bool { return meds[i].BrandID < meds[j].BrandID })
	}

	return catalog
}
