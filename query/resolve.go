package query

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/medebd/medicine-api/catalogparser/entities"
	"github.com/medebd/medicine-api/interfaces"
)

// ResolveMedicine joins one medicine with its company name and generic
// record. A missing company yields a nil company name and a missing or
// absent generic yields an empty generic_details list; neither is an error.
func ResolveMedicine(store interfaces.CatalogStore, med entities.Medicine) entities.MedicineDetails {
	details := entities.MedicineDetails{
		Medicine:       &med,
		GenericDetails: []entities.Generic{},
	}

	if company, ok := store.GetCompanyIndex()[med.CompanyID]; ok {
		details.CompanyName = &company.CompanyName
	}

	if med.GenericRef != 0 {
		if generic, ok := store.GetGenericIndex()[med.GenericRef]; ok {
			details.GenericDetails = []entities.Generic{NormalizeGeneric(generic)}
		}
	}

	return details
}

// ResolveGenericMatch joins a symptom-matched generic with one of its brands
// and that brand's company. When no medicine carries the generic, only the
// generic fields survive in the result; the medicine and company stay null.
// With several brands on file the one with the lowest brand id wins (the
// reverse index is kept in that order).
func ResolveGenericMatch(store interfaces.CatalogStore, generic entities.Generic) entities.MedicineDetails {
	details := entities.MedicineDetails{
		GenericDetails: []entities.Generic{NormalizeGeneric(generic)},
	}

	meds := store.GetMedicinesByGeneric()[generic.GenericID]
	if len(meds) == 0 {
		return details
	}

	med := meds[0]
	details.Medicine = &med

	if company, ok := store.GetCompanyIndex()[med.CompanyID]; ok {
		details.CompanyName = &company.CompanyName
	}

	return details
}

// ResolveMedicinePage resolves every row of a result page concurrently.
// Rows are independent; results are recombined by index so the page order is
// preserved. A join miss on one row never affects the others.
func ResolveMedicinePage(ctx context.Context, store interfaces.CatalogStore, meds []entities.Medicine) []entities.MedicineDetails {
	out := make([]entities.MedicineDetails, len(meds))

	g, gCtx := errgroup.WithContext(ctx)
	for i, med := range meds {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			out[i] = ResolveMedicine(store, med)
			return nil
		})
	}
	// Lookups cannot fail, only a cancelled context stops early
	_ = g.Wait()

	return out
}

// ResolveGenericPage resolves a page of symptom-matched generics
// concurrently, preserving row order.
func ResolveGenericPage(ctx context.Context, store interfaces.CatalogStore, gens []entities.Generic) []entities.MedicineDetails {
	out := make([]entities.MedicineDetails, len(gens))

	g, gCtx := errgroup.WithContext(ctx)
	for i, generic := range gens {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			out[i] = ResolveGenericMatch(store, generic)
			return nil
		})
	}
	_ = g.Wait()

	return out
}
