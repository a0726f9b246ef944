// Package health provides health checking functionality for the medicine API.
package health

import (
	"math"
	"net/http"
	"time"

	"github.com/medebd/medicine-api/interfaces"
)

// Compile-time check to ensure Checker implements HealthChecker
var _ interfaces.HealthChecker = (*Checker)(nil)

// Checker derives a health status from catalog availability and age.
type Checker struct {
	store interfaces.CatalogStore
}

// NewChecker creates a health checker reading from the given store
func NewChecker(store interfaces.CatalogStore) *Checker {
	return &Checker{store: store}
}

// HealthCheck returns the current status, the data fields for the /health
// payload and the HTTP status code to serve it with. The catalog reloads
// twice a day; data older than a day means reloads are failing.
func (c *Checker) HealthCheck() (string, map[string]any, int) {
	medicines := c.store.GetMedicines()
	generics := c.store.GetGenerics()
	companies := c.store.GetCompanies()
	lastUpdate := c.store.GetLastUpdated()
	isUpdating := c.store.IsUpdating()

	dataAge := time.Since(lastUpdate)

	var status string
	var httpStatus int
	switch {
	case len(medicines) == 0:
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable

	case dataAge > 48*time.Hour:
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable

	case dataAge > 24*time.Hour:
		status = "degraded"
		httpStatus = http.StatusOK

	default:
		status = "healthy"
		httpStatus = http.StatusOK
	}

	data := map[string]any{
		"last_update":    lastUpdate.Format(time.RFC3339),
		"data_age_hours": math.Round(dataAge.Hours()*10) / 10,
		"medicines":      len(medicines),
		"generics":       len(generics),
		"companies":      len(companies),
		"is_updating":    isUpdating,
		"next_update":    c.CalculateNextUpdate().Format(time.RFC3339),
	}

	return status, data, httpStatus
}

// CalculateNextUpdate returns the next scheduled catalog reload time
// (reloads run at 06:00 and 18:00 local time).
func (c *Checker) CalculateNextUpdate() time.Time {
	now := time.Now()

	sixAM := time.Date(now.Year(), now.Month(), now.Day(), 6, 0, 0, 0, now.Location())
	sixPM := time.Date(now.Year(), now.Month(), now.Day(), 18, 0, 0, 0, now.Location())

	if now.Before(sixAM) {
		return sixAM
	}
	if now.Before(sixPM) {
		return sixPM
	}
	return sixAM.AddDate(0, 0, 1)
}
