package catalogparser

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/medebd/medicine-api/catalogparser/entities"
	"github.com/medebd/medicine-api/logging"
)

// loadSQLite reads the catalog from a SQLite snapshot with the tables
// medicine, generic and company. The snapshot is opened read-only; this
// process never writes the dataset.
func loadSQLite(path string) ([]entities.Medicine, []entities.Generic, []entities.Company, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open sqlite snapshot: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Warn("Failed to close sqlite snapshot", "error", err)
		}
	}()

	medicines, err := readMedicines(db)
	if err != nil {
		return nil, nil, nil, err
	}

	generics, err := readGenerics(db)
	if err != nil {
		return nil, nil, nil, err
	}

	companies, err := readCompanies(db)
	if err != nil {
		return nil, nil, nil, err
	}

	return medicines, generics, companies, nil
}

func readMedicines(db *sql.DB) ([]entities.Medicine, error) {
	rows, err := db.Query(`SELECT brand_id, brand_name, form, generic_id, company_id, packsize, price, strength FROM medicine`)
	if err != nil {
		return nil, fmt.Errorf("failed to query medicine table: %w", err)
	}
	defer rows.Close()

	var medicines []entities.Medicine
	for rows.Next() {
		var m entities.Medicine
		if err := rows.Scan(&m.BrandID, &m.BrandName, &m.Form, &m.GenericID, &m.CompanyID, &m.PackSize, &m.Price, &m.Strength); err != nil {
			return nil, fmt.Errorf("failed to scan medicine row: %w", err)
		}
		medicines = append(medicines, m)
	}

	return medicines, rows.Err()
}

func readGenerics(db *sql.DB) ([]entities.Generic, error) {
	rows, err := db.Query(`SELECT generic_id, generic_name, generic_name_bangla, indication FROM generic`)
	if err != nil {
		return nil, fmt.Errorf("failed to query generic table: %w", err)
	}
	defer rows.Close()

	var generics []entities.Generic
	for rows.Next() {
		var g entities.Generic
		var indication string
		if err := rows.Scan(&g.GenericID, &g.GenericName, &g.GenericNameBangla, &indication); err != nil {
			return nil, fmt.Errorf("failed to scan generic row: %w", err)
		}
		g.Indication = splitIndications(indication)
		generics = append(generics, g)
	}

	return generics, rows.Err()
}

func readCompanies(db *sql.DB) ([]entities.Company, error) {
	rows, err := db.Query(`SELECT company_id, company_name FROM company`)
	if err != nil {
		return nil, fmt.Errorf("failed to query company table: %w", err)
	}
	defer rows.Close()

	var companies []entities.Company
	for rows.Next() {
		var c entities.Company
		if err := rows.Scan(&c.CompanyID, &c.CompanyName); err != nil {
			return nil, fmt.Errorf("failed to scan company row: %w", err)
		}
		companies = append(companies, c)
	}

	return companies, rows.Err()
}

// splitIndications turns the comma-separated indication column into the
// in-memory list, dropping empty segments.
func splitIndications(raw string) []string {
	parts := strings.Split(raw, ",")
	indications := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			indications = append(indications, trimmed)
		}
	}
	return indications
}
