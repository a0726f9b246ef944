// Package data provides thread-safe storage for the medicine catalog.
// It includes the Container struct with atomic snapshot swaps for
// zero-downtime reloads and thread-safe access methods for medicines,
// generics and companies.
package data

import (
	"sync/atomic"
	"time"

	"github.com/medebd/medicine-api/catalogparser/entities"
	"github.com/medebd/medicine-api/interfaces"
	"github.com/medebd/medicine-api/logging"
)

// Compile-time check to ensure Container implements CatalogStore
var _ interfaces.CatalogStore = (*Container)(nil)

// Container holds the current catalog snapshot behind an atomic pointer so
// readers never observe a half-updated dataset.
type Container struct {
	catalog         atomic.Value // *entities.Catalog
	lastUpdated     atomic.Value // time.Time
	updating        atomic.Bool
	serverStartTime atomic.Value // time.Time
}

// NewContainer creates a new Container with an empty catalog
func NewContainer() *Container {
	c := &Container{}
	c.catalog.Store(emptyCatalog())
	c.lastUpdated.Store(time.Time{})
	c.serverStartTime.Store(time.Time{})
	return c
}

func emptyCatalog() *entities.Catalog {
	return &entities.Catalog{
		Medicines:          make([]entities.Medicine, 0),
		Generics:           make([]entities.Generic, 0),
		Companies:          make([]entities.Company, 0),
		BrandIndex:         make(map[int]entities.Medicine),
		GenericIndex:       make(map[int]entities.Generic),
		CompanyIndex:       make(map[int]entities.Company),
		MedicinesByGeneric: make(map[int][]entities.Medicine),
		MedicinesByCompany: make(map[int][]entities.Medicine),
	}
}

// snapshot returns the current catalog with a type check
func (c *Container) snapshot() *entities.Catalog {
	if v := c.catalog.Load(); v != nil {
		if catalog, ok := v.(*entities.Catalog); ok && catalog != nil {
			return catalog
		}
	}

	logging.Warn("Catalog snapshot is empty or invalid")
	return emptyCatalog()
}

// GetMedicines returns the list of medicines
func (c *Container) GetMedicines() []entities.Medicine {
	return c.snapshot().Medicines
}

// GetGenerics returns the list of generics
func (c *Container) GetGenerics() []entities.Generic {
	return c.snapshot().Generics
}

// GetCompanies returns the list of companies
func (c *Container) GetCompanies() []entities.Company {
	return c.snapshot().Companies
}

// GetBrandIndex returns the brand id map for O(1) lookups
func (c *Container) GetBrandIndex() map[int]entities.Medicine {
	return c.snapshot().BrandIndex
}

// GetGenericIndex returns the generic id map for O(1) lookups
func (c *Container) GetGenericIndex() map[int]entities.Generic {
	return c.snapshot().GenericIndex
}

// GetCompanyIndex returns the company id map for O(1) lookups
func (c *Container) GetCompanyIndex() map[int]entities.Company {
	return c.snapshot().CompanyIndex
}

// GetMedicinesByGeneric returns the generic id to medicines reverse index
func (c *Container) GetMedicinesByGeneric() map[int][]entities.Medicine {
	return c.snapshot().MedicinesByGeneric
}

// GetMedicinesByCompany returns the company id to medicines reverse index
func (c *Container) GetMedicinesByCompany() map[int][]entities.Medicine {
	return c.snapshot().MedicinesByCompany
}

// GetLastUpdated returns the timestamp of the last catalog reload
func (c *Container) GetLastUpdated() time.Time {
	if v := c.lastUpdated.Load(); v != nil {
		if lastUpdated, ok := v.(time.Time); ok {
			return lastUpdated
		}
	}

	logging.Warn("Could not get the last updated value")
	return time.Time{}
}

// IsUpdating returns true if a catalog reload is currently in progress
func (c *Container) IsUpdating() bool {
	return c.updating.Load()
}

// SetServerStartTime sets the server start time
func (c *Container) SetServerStartTime(startTime time.Time) {
	c.serverStartTime.Store(startTime)
}

// GetServerStartTime returns the server start time
func (c *Container) GetServerStartTime() time.Time {
	if v := c.serverStartTime.Load(); v != nil {
		if startTime, ok := v.(time.Time); ok {
			return startTime
		}
	}

	logging.Warn("Could not get the server start time value")
	return time.Time{}
}

// UpdateCatalog atomically swaps in a new catalog snapshot
func (c *Container) UpdateCatalog(catalog *entities.Catalog) {
	if catalog == nil {
		logging.Warn("Refusing to store a nil catalog")
		return
	}

	c.catalog.Store(catalog)
	c.lastUpdated.Store(time.Now())
}

// BeginUpdate marks the start of a catalog reload.
// Returns true if the reload can proceed, false if another one is in progress.
func (c *Container) BeginUpdate() bool {
	return c.updating.CompareAndSwap(false, true)
}

// EndUpdate marks the end of a catalog reload
func (c *Container) EndUpdate() {
	c.updating.Store(false)
}
