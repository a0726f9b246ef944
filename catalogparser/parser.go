// Package catalogparser loads the medicine reference dataset into memory.
// The dataset ships either as three JSON files (medicines.json,
// generics.json, companies.json) or as a single SQLite snapshot
// (medicine.db); both layouts produce the same in-memory catalog.
package catalogparser

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/medebd/medicine-api/catalogparser/entities"
	"github.com/medebd/medicine-api/interfaces"
	"github.com/medebd/medicine-api/logging"
)

const (
	medicinesFile = "medicines.json"
	genericsFile  = "generics.json"
	companiesFile = "companies.json"
	sqliteFile    = "medicine.db"
)

// Compile-time check to ensure Loader implements CatalogLoader
var _ interfaces.CatalogLoader = (*Loader)(nil)

// Loader reads the reference dataset from a data directory.
type Loader struct {
	dataDir string
}

// NewLoader creates a loader for the given data directory
func NewLoader(dataDir string) *Loader {
	return &Loader{dataDir: dataDir}
}

// Load reads the dataset and builds a catalog snapshot. A SQLite snapshot
// takes precedence over the JSON files when both are present.
func (l *Loader) Load() (*entities.Catalog, error) {
	start := time.Now()

	sqlitePath := filepath.Join(l.dataDir, sqliteFile)
	var (
		medicines []entities.Medicine
		generics  []entities.Generic
		companies []entities.Company
		err       error
	)

	if _, statErr := os.Stat(sqlitePath); statErr == nil {
		medicines, generics, companies, err = loadSQLite(sqlitePath)
	} else {
		medicines, generics, companies, err = l.loadJSONFiles()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog from %s: %w", l.dataDir, err)
	}

	catalog := BuildCatalog(medicines, generics, companies)

	logging.Info("Catalog loaded",
		"duration", time.Since(start).String(),
		"medicines", len(catalog.Medicines),
		"generics", len(catalog.Generics),
		"companies", len(catalog.Companies))

	return catalog, nil
}

// loadJSONFiles parses the three dataset files concurrently
func (l *Loader) loadJSONFiles() ([]entities.Medicine, []entities.Generic, []entities.Company, error) {
	var (
		medicines []entities.Medicine
		generics  []entities.Generic
		companies []entities.Company

		medErr, genErr, compErr error
	)

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		medicines, medErr = readJSONFile[entities.Medicine](filepath.Join(l.dataDir, medicinesFile))
	}()

	go func() {
		defer wg.Done()
		generics, genErr = readJSONFile[entities.Generic](filepath.Join(l.dataDir, genericsFile))
	}()

	go func() {
		defer wg.Done()
		companies, compErr = readJSONFile[entities.Company](filepath.Join(l.dataDir, companiesFile))
	}()

	wg.Wait()

	for _, err := range []error{medErr, genErr, compErr} {
		if err != nil {
			return nil, nil, nil, err
		}
	}

	return medicines, generics, companies, nil
}
