// Package interfaces defines core abstractions for the medicine API
// to improve testability, maintainability, and separation of concerns.
package interfaces

import (
	"time"

	"github.com/medebd/medicine-api/catalogparser/entities"
)

// CatalogStore defines the contract for catalog storage operations.
// It provides thread-safe access to the medicine, generic and company data
// with atomic snapshot swaps for zero-downtime updates. The catalog is
// read-only from the API's perspective; the update methods exist solely for
// the scheduled reloads.
type CatalogStore interface {
	// Snapshot access
	GetMedicines() []entities.Medicine
	GetGenerics() []entities.Generic
	GetCompanies() []entities.Company
	GetBrandIndex() map[int]entities.Medicine
	GetGenericIndex() map[int]entities.Generic
	GetCompanyIndex() map[int]entities.Company
	GetMedicinesByGeneric() map[int][]entities.Medicine
	GetMedicinesByCompany() map[int][]entities.Medicine

	GetLastUpdated() time.Time
	IsUpdating() bool
	GetServerStartTime() time.Time

	// Reload coordination
	UpdateCatalog(catalog *entities.Catalog)
	BeginUpdate() bool
	EndUpdate()
}

// CatalogLoader defines the contract for loading the reference dataset from
// an external source (JSON dataset files or a SQLite snapshot).
type CatalogLoader interface {
	Load() (*entities.Catalog, error)
}

// Scheduler defines the contract for job scheduling and health monitoring.
// It manages automated catalog reloads and staleness checks.
type Scheduler interface {
	Start() error
	Stop()
}

// HealthChecker defines the contract for health check functionality.
type HealthChecker interface {
	HealthCheck() (status string, details map[string]any, httpStatus int)
	CalculateNextUpdate() time.Time
}
