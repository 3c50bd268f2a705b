package seed

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"investor-commitments/internal/models"

	"gorm.io/gorm"
)

// Seeder performs the one-time bulk import of investors and commitments
// from a tabular seed file. It runs at most once per store: if any investor
// already exists the whole import is skipped.
type Seeder struct {
	DB   *gorm.DB
	Path string
}

func NewSeeder(db *gorm.DB, path string) *Seeder {
	return &Seeder{
		DB:   db,
		Path: path,
	}
}

// dateLayouts are tried in order when parsing the free-text date columns.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"1/2/2006 15:04",
	"1/2/2006",
}

// parseDate parses a free-text date best-effort. An unparseable value
// yields the fallback; the substituted value ends up in the stored row,
// so callers should pass the import time.
func parseDate(s string, fallback time.Time) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return fallback
}

// Run imports the seed file and returns the number of records (one
// commitment each) written. A store that already holds investors and a
// missing seed file both return (0, nil). A malformed file or a store
// failure aborts with nothing written.
func (s *Seeder) Run() (int, error) {
	var existing int64
	if err := s.DB.Model(&models.Investor{}).Count(&existing).Error; err != nil {
		return 0, fmt.Errorf("check existing investors: %w", err)
	}
	if existing > 0 {
		log.Printf("store already contains %d investors, skipping seed import", existing)
		return 0, nil
	}

	if s.Path == "" {
		log.Printf("no seed file configured, skipping seed import")
		return 0, nil
	}
	if _, err := os.Stat(s.Path); err != nil {
		log.Printf("seed file %s not found, skipping seed import", s.Path)
		return 0, nil
	}

	records, err := ReadFile(s.Path)
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		log.Printf("seed file %s contains no records", s.Path)
		return 0, nil
	}

	// resolve investors by name in input order; the first record for a
	// name fixes the investor's fields
	now := time.Now().UTC()
	byName := make(map[string]*models.Investor)
	var investors []*models.Investor
	for _, rec := range records {
		if _, ok := byName[rec.InvestorName]; ok {
			continue
		}
		inv := &models.Investor{
			Name:        rec.InvestorName,
			Type:        rec.InvestorType,
			Country:     rec.InvestorCountry,
			DateAdded:   parseDate(rec.InvestorDateAdded, now),
			LastUpdated: parseDate(rec.InvestorLastUpdated, now),
		}
		byName[rec.InvestorName] = inv
		investors = append(investors, inv)
	}

	// all-or-nothing: investors first so ids exist, then commitments in
	// input order, inside one transaction
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&investors).Error; err != nil {
			return fmt.Errorf("insert investors: %w", err)
		}
		commitments := make([]models.Commitment, 0, len(records))
		for _, rec := range records {
			commitments = append(commitments, models.Commitment{
				InvestorID: byName[rec.InvestorName].ID,
				AssetClass: rec.CommitmentAssetClass,
				Amount:     rec.CommitmentAmount,
				Currency:   rec.CommitmentCurrency,
			})
		}
		if err := tx.Create(&commitments).Error; err != nil {
			return fmt.Errorf("insert commitments: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Printf("imported %d records (%d investors) from %s", len(records), len(investors), s.Path)
	return len(records), nil
}
