package query

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/medebd/medicine-api/catalogparser/entities"
)

func TestResolveMedicine(t *testing.T) {
	store := newTestStore(t)

	med := store.GetBrandIndex()[1]
	details := ResolveMedicine(store, med)

	if details.Medicine == nil || details.BrandID != 1 {
		t.Fatal("expected medicine fields on the resolved row")
	}

	if details.CompanyName == nil {
		t.Fatal("expected company name to resolve")
	}
	if *details.CompanyName != "Beximco Pharmaceuticals Ltd." {
		t.Errorf("CompanyName = %q, want Beximco Pharmaceuticals Ltd.", *details.CompanyName)
	}

	if len(details.GenericDetails) != 1 {
		t.Fatalf("GenericDetails length = %d, want 1", len(details.GenericDetails))
	}
	if details.GenericDetails[0].GenericName != "Paracetamol" {
		t.Errorf("generic name = %q, want Paracetamol", details.GenericDetails[0].GenericName)
	}
}

func TestResolveMedicineMissingJoins(t *testing.T) {
	store := newTestStore(t)

	// Brand 6 points at an unknown company and carries no generic
	med := store.GetBrandIndex()[6]
	details := ResolveMedicine(store, med)

	if details.CompanyName != nil {
		t.Errorf("CompanyName = %q, want nil for unknown company", *details.CompanyName)
	}
	if details.GenericDetails == nil {
		t.Error("GenericDetails should be an empty list, not nil")
	}
	if len(details.GenericDetails) != 0 {
		t.Errorf("GenericDetails length = %d, want 0", len(details.GenericDetails))
	}
}

func TestResolveMedicineNormalizesGeneric(t *testing.T) {
	store := newTestStore(t)

	med := store.GetBrandIndex()[4]
	details := ResolveMedicine(store, med)

	if len(details.GenericDetails) != 1 {
		t.Fatalf("GenericDetails length = %d, want 1", len(details.GenericDetails))
	}
	name := details.GenericDetails[0].GenericName
	if name != CollapseWhitespace(name) {
		t.Errorf("generic name %q should be whitespace-normalized", name)
	}
}

func TestResolveGenericMatch(t *testing.T) {
	store := newTestStore(t)

	generic := store.GetGenericIndex()[1]
	details := ResolveGenericMatch(store, generic)

	if details.Medicine == nil {
		t.Fatal("expected a medicine for a generic that has brands")
	}
	// Lowest brand id wins
	if details.BrandID != 1 {
		t.Errorf("BrandID = %d, want 1", details.BrandID)
	}
	if details.CompanyName == nil {
		t.Error("expected the brand's company to resolve")
	}
	if len(details.GenericDetails) != 1 || details.GenericDetails[0].GenericID != 1 {
		t.Error("expected the matched generic in generic_details")
	}
}

func TestResolveGenericMatchWithoutMedicine(t *testing.T) {
	store := newTestStore(t)

	// Generic 3 has no medicine referencing it
	generic := store.GetGenericIndex()[3]
	details := ResolveGenericMatch(store, generic)

	if details.Medicine != nil {
		t.Fatal("expected nil medicine for a generic without brands")
	}
	if details.CompanyName != nil {
		t.Error("expected nil company name for a generic without brands")
	}
	if len(details.GenericDetails) != 1 {
		t.Fatalf("GenericDetails length = %d, want 1", len(details.GenericDetails))
	}

	// Only the generic fields survive on the wire
	body, err := json.Marshal(details)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(body), "brand_id") {
		t.Errorf("medicine fields leaked into the response: %s", body)
	}
	if !strings.Contains(string(body), "generic_details") {
		t.Errorf("generic fields missing from the response: %s", body)
	}
}

func TestResolveMedicinePagePreservesOrder(t *testing.T) {
	store := newTestStore(t)

	meds := []entities.Medicine{
		store.GetBrandIndex()[5],
		store.GetBrandIndex()[1],
		store.GetBrandIndex()[4],
	}

	rows := ResolveMedicinePage(context.Background(), store, meds)

	if len(rows) != 3 {
		t.Fatalf("rows length = %d, want 3", len(rows))
	}
	wantOrder := []int{5, 1, 4}
	for i, wantID := range wantOrder {
		if rows[i].Medicine == nil || rows[i].BrandID != wantID {
			t.Errorf("rows[%d].BrandID, want %d", i, wantID)
		}
	}
}

func TestResolveMedicinePageEmpty(t *testing.T) {
	store := newTestStore(t)

	rows := ResolveMedicinePage(context.Background(), store, nil)
	if len(rows) != 0 {
		t.Errorf("rows length = %d, want 0", len(rows))
	}
}

func TestResolveGenericPagePreservesOrder(t *testing.T) {
	store := newTestStore(t)

	gens := []entities.Generic{
		store.GetGenericIndex()[2],
		store.GetGenericIndex()[1],
	}

	rows := ResolveGenericPage(context.Background(), store, gens)

	if len(rows) != 2 {
		t.Fatalf("rows length = %d, want 2", len(rows))
	}
	if rows[0].GenericDetails[0].GenericID != 2 {
		t.Errorf("rows[0] generic = %d, want 2", rows[0].GenericDetails[0].GenericID)
	}
	if rows[1].GenericDetails[0].GenericID != 1 {
		t.Errorf("rows[1] generic = %d, want 1", rows[1].GenericDetails[0].GenericID)
	}
}
