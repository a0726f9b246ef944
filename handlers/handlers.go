// Package handlers provides the HTTP request handlers for the medicine API
// endpoints: brand name search, symptom search, generic and company listing,
// id-based lookups and health reporting. Every handler is a closure over the
// catalog store, parses its query parameters defensively and responds with
// the common JSON envelope.
package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/medebd/medicine-api/health"
	"github.com/medebd/medicine-api/interfaces"
	"github.com/medebd/medicine-api/query"
	"github.com/medebd/medicine-api/validation"
)

// GetAllMedicine lists medicines, optionally filtered by a case-insensitive
// brand name substring (?medicineName=), ranked and paginated.
func GetAllMedicine(store interfaces.CatalogStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := query.ParsePagination(r.URL.Query().Get("page"), r.URL.Query().Get("limit"))

		medicineName := r.URL.Query().Get("medicineName")
		if err := validation.ValidateSearchTerm(medicineName); err != nil {
			RespondWithError(w, http.StatusBadRequest, "Invalid medicine name")
			return
		}

		totalCount, page := query.SearchMedicinesByName(store, medicineName, p)
		details := query.ResolveMedicinePage(r.Context(), store, page)

		respondWithList(w, details, totalCount, query.TotalPages(totalCount, p.Limit), p.Page)
	}
}

// SearchMedicine searches generics by symptom (?symptom=) and returns each
// match joined with one of its brands and that brand's company.
func SearchMedicine(store interfaces.CatalogStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := query.ParsePagination(r.URL.Query().Get("page"), r.URL.Query().Get("limit"))

		symptom := r.URL.Query().Get("symptom")
		if err := validation.ValidateSearchTerm(symptom); err != nil {
			RespondWithError(w, http.StatusBadRequest, "Invalid symptom")
			return
		}

		totalCount, page := query.SearchGenericsBySymptom(store, symptom, p)
		details := query.ResolveGenericPage(r.Context(), store, page)

		respondWithList(w, details, totalCount, query.TotalPages(totalCount, p.Limit), p.Page)
	}
}

// DisplayGeneric lists all generics in catalog order, paginated in memory.
func DisplayGeneric(store interfaces.CatalogStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := query.ParsePagination(r.URL.Query().Get("page"), r.URL.Query().Get("limit"))

		totalCount, summaries := query.ListGenerics(store, p)

		respondWithList(w, summaries, totalCount, query.TotalPages(totalCount, p.Limit), p.Page)
	}
}

// SearchByGeneric lists the medicines referencing a generic id (?id=).
func SearchByGeneric(store interfaces.CatalogStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := query.ParsePagination(r.URL.Query().Get("page"), r.URL.Query().Get("limit"))

		genericID, err := validation.ParseID(r.URL.Query().Get("id"))
		if err != nil {
			RespondWithError(w, http.StatusBadRequest, "Invalid generic id")
			return
		}

		totalCount, page := query.SearchMedicinesByGenericID(store, genericID, p)
		details := query.ResolveMedicinePage(r.Context(), store, page)

		respondWithList(w, details, totalCount, query.TotalPages(totalCount, p.Limit), p.Page)
	}
}

// DisplayCompany lists all companies in catalog order, paginated in memory.
func DisplayCompany(store interfaces.CatalogStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := query.ParsePagination(r.URL.Query().Get("page"), r.URL.Query().Get("limit"))

		totalCount, companies := query.ListCompanies(store, p)

		respondWithList(w, companies, totalCount, query.TotalPages(totalCount, p.Limit), p.Page)
	}
}

// SearchByCompanyID lists the medicines made by a company (?id=).
func SearchByCompanyID(store interfaces.CatalogStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := query.ParsePagination(r.URL.Query().Get("page"), r.URL.Query().Get("limit"))

		companyID, err := validation.ParseID(r.URL.Query().Get("id"))
		if err != nil {
			RespondWithError(w, http.StatusBadRequest, "Invalid company id")
			return
		}

		totalCount, page := query.SearchMedicinesByCompanyID(store, companyID, p)
		details := query.ResolveMedicinePage(r.Context(), store, page)

		respondWithList(w, details, totalCount, query.TotalPages(totalCount, p.Limit), p.Page)
	}
}

// GetMedicineDetails returns one medicine by brand id with its company and
// generic record joined in.
func GetMedicineDetails(store interfaces.CatalogStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brandID, err := validation.ParseID(chi.URLParam(r, "brandId"))
		if err != nil {
			RespondWithError(w, http.StatusBadRequest, "Invalid brand id")
			return
		}

		medicine, exists := store.GetBrandIndex()[brandID]
		if !exists {
			RespondWithError(w, http.StatusNotFound, "Medicine not found")
			return
		}

		RespondWithJSON(w, http.StatusOK, DetailResponse{
			Status:  true,
			Details: query.ResolveMedicine(store, medicine),
		})
	}
}

// HealthResponse defines the structure for consistent JSON ordering
type HealthResponse struct {
	Status        string         `json:"status"`
	UptimeSeconds float64        `json:"uptime_seconds"`
	Data          map[string]any `json:"data"`
	System        map[string]any `json:"system"`
}

// HealthCheck returns server health information
func HealthCheck(store interfaces.CatalogStore) http.HandlerFunc {
	checker := health.NewChecker(store)

	return func(w http.ResponseWriter, r *http.Request) {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		status, data, httpStatus := checker.HealthCheck()
		uptime := time.Since(store.GetServerStartTime())

		response := HealthResponse{
			Status:        status,
			UptimeSeconds: uptime.Seconds(),
			Data:          data,
			System: map[string]any{
				"goroutines": runtime.NumGoroutine(),
				"memory": map[string]any{
					"alloc_mb":       int(m.Alloc / 1024 / 1024),
					"total_alloc_mb": int(m.TotalAlloc / 1024 / 1024),
					"sys_mb":         int(m.Sys / 1024 / 1024),
					"num_gc":         m.NumGC,
				},
			},
		}

		RespondWithJSON(w, httpStatus, response)
	}
}
