// Package scheduler coordinates catalog reloads and staleness monitoring
// for the medicine API. The dataset on disk is refreshed out of band; this
// scheduler re-reads it twice a day and swaps the new snapshot into the
// store without downtime.
package scheduler

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/medebd/medicine-api/interfaces"
	"github.com/medebd/medicine-api/logging"
	"github.com/medebd/medicine-api/metrics"
)

// Compile-time check to ensure Scheduler implements the Scheduler interface
var _ interfaces.Scheduler = (*Scheduler)(nil)

// Scheduler reloads the catalog on a fixed schedule using injected
// dependencies.
type Scheduler struct {
	store     interfaces.CatalogStore
	loader    interfaces.CatalogLoader
	scheduler *gocron.Scheduler
	stopCh    chan struct{}
}

// NewScheduler creates a new scheduler instance with injected dependencies
func NewScheduler(store interfaces.CatalogStore, loader interfaces.CatalogLoader) *Scheduler {
	return &Scheduler{
		store:     store,
		loader:    loader,
		scheduler: gocron.NewScheduler(time.Local),
		stopCh:    make(chan struct{}),
	}
}

// Start performs the initial catalog load and schedules the twice-daily
// reloads plus staleness monitoring.
func (s *Scheduler) Start() error {
	if err := s.reloadCatalog(); err != nil {
		logging.Error("Failed to perform initial catalog load", "error", err)
		return fmt.Errorf("initial catalog load failed: %w", err)
	}

	_, err := s.scheduler.Every(1).Days().At("06:00;18:00").Do(func() {
		if err := s.reloadCatalog(); err != nil {
			logging.Error("Failed to reload catalog", "error", err)
		}
	})
	if err != nil {
		logging.Error("Failed to schedule catalog reloads", "error", err)
		return fmt.Errorf("failed to schedule catalog reloads: %w", err)
	}

	s.scheduler.StartAsync()
	s.startStalenessMonitoring()

	return nil
}

// Stop stops the scheduler and the staleness monitor
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
	close(s.stopCh)
}

// reloadCatalog loads a fresh snapshot and swaps it in atomically. Requests
// in flight keep reading the old snapshot until the swap completes.
func (s *Scheduler) reloadCatalog() error {
	// Prevent concurrent reloads
	if !s.store.BeginUpdate() {
		logging.Info("Catalog reload already in progress, skipping...")
		return nil
	}
	defer s.store.EndUpdate()

	start := time.Now()

	catalog, err := s.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	s.store.UpdateCatalog(catalog)

	metrics.CatalogRecords.WithLabelValues("medicines").Set(float64(len(catalog.Medicines)))
	metrics.CatalogRecords.WithLabelValues("generics").Set(float64(len(catalog.Generics)))
	metrics.CatalogRecords.WithLabelValues("companies").Set(float64(len(catalog.Companies)))
	metrics.CatalogLastReload.SetToCurrentTime()

	logging.Info("Catalog reload completed",
		"duration", time.Since(start).String(),
		"medicine_count", len(catalog.Medicines))

	return nil
}

// startStalenessMonitoring warns when the catalog misses a reload cycle
func (s *Scheduler) startStalenessMonitoring() {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for {
			select {
			case <-s.stopCh:
				return
			case <-ticker.C:
				lastUpdate := s.store.GetLastUpdated()
				if time.Since(lastUpdate) > 25*time.Hour {
					logging.Warn("Catalog hasn't been reloaded in over 25 hours")
				}
			}
		}
	}()
}
