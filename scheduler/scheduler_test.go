package scheduler

import (
	"errors"
	"testing"

	"github.com/medebd/medicine-api/catalogparser"
	"github.com/medebd/medicine-api/catalogparser/entities"
	"github.com/medebd/medicine-api/data"
)

type fakeLoader struct {
	catalog *entities.Catalog
	err     error
	calls   int
}

func (f *fakeLoader) Load() (*entities.Catalog, error) {
	f.calls++
	return f.catalog, f.err
}

func smallCatalog() *entities.Catalog {
	return catalogparser.BuildCatalog(
		[]entities.Medicine{{BrandID: 1, BrandName: "Napa", GenericID: "1", CompanyID: 1}},
		[]entities.Generic{{GenericID: 1, GenericName: "Paracetamol"}},
		[]entities.Company{{CompanyID: 1, CompanyName: "Beximco"}})
}

func TestReloadCatalog(t *testing.T) {
	store := data.NewContainer()
	loader := &fakeLoader{catalog: smallCatalog()}
	s := NewScheduler(store, loader)

	if err := s.reloadCatalog(); err != nil {
		t.Fatalf("reloadCatalog: %v", err)
	}

	if loader.calls != 1 {
		t.Errorf("loader calls = %d, want 1", loader.calls)
	}
	if len(store.GetMedicines()) != 1 {
		t.Errorf("medicines = %d, want 1", len(store.GetMedicines()))
	}
	if store.GetLastUpdated().IsZero() {
		t.Error("lastUpdated should be set after a reload")
	}
	if store.IsUpdating() {
		t.Error("updating flag should be cleared after a reload")
	}
}

func TestReloadCatalogPropagatesLoaderError(t *testing.T) {
	store := data.NewContainer()
	loader := &fakeLoader{err: errors.New("dataset unreadable")}
	s := NewScheduler(store, loader)

	if err := s.reloadCatalog(); err == nil {
		t.Fatal("expected the loader error to propagate")
	}

	if len(store.GetMedicines()) != 0 {
		t.Error("a failed reload must not touch the snapshot")
	}
	if store.IsUpdating() {
		t.Error("updating flag should be cleared after a failed reload")
	}
}

func TestReloadCatalogSkipsWhenAlreadyUpdating(t *testing.T) {
	store := data.NewContainer()
	loader := &fakeLoader{catalog: smallCatalog()}
	s := NewScheduler(store, loader)

	if !store.BeginUpdate() {
		t.Fatal("BeginUpdate should succeed")
	}
	defer store.EndUpdate()

	if err := s.reloadCatalog(); err != nil {
		t.Fatalf("reloadCatalog: %v", err)
	}

	if loader.calls != 0 {
		t.Errorf("loader calls = %d, want 0 (reload in progress)", loader.calls)
	}
}

func TestStartStopLifecycle(t *testing.T) {
	store := data.NewContainer()
	loader := &fakeLoader{catalog: smallCatalog()}
	s := NewScheduler(store, loader)

	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if loader.calls != 1 {
		t.Errorf("loader calls after Start = %d, want 1 (initial load)", loader.calls)
	}
	if len(store.GetMedicines()) != 1 {
		t.Error("initial load should populate the store")
	}

	s.Stop()
}

func TestStartFailsWhenInitialLoadFails(t *testing.T) {
	store := data.NewContainer()
	loader := &fakeLoader{err: errors.New("dataset missing")}
	s := NewScheduler(store, loader)

	if err := s.Start(); err == nil {
		t.Fatal("Start should fail when the initial load fails")
	}
}
