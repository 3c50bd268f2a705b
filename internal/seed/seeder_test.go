package seed

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"investor-commitments/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	// a pooled second connection would see a different :memory: database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.Investor{}, &models.Commitment{}); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return n
}

func TestSeederRun_DedupsInvestorsByName(t *testing.T) {
	db := newTestDB(t)
	path := writeSeedFile(t, "data.csv", sampleHeader+"\n"+
		"Acme Wealth,bank,United Kingdom,2010-06-08,2024-02-21,Infrastructure,1000000.00,GBP\n"+
		"Acme Wealth,bank,United Kingdom,2010-06-08,2024-02-21,Infrastructure,500000.00,GBP\n"+
		"Mjd Jedi fund,asset manager,China,2010-06-08,2024-02-21,Hedge Funds,30000000.00,USD\n")

	n, err := NewSeeder(db, path).Run()
	if err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}
	if n != 3 {
		t.Errorf("Run() = %d records, want 3", n)
	}

	// two distinct names -> two investors, one commitment per record
	if got := countRows(t, db, &models.Investor{}); got != 2 {
		t.Errorf("investor count = %d, want 2", got)
	}
	if got := countRows(t, db, &models.Commitment{}); got != 3 {
		t.Errorf("commitment count = %d, want 3", got)
	}

	// both Acme commitments reference the same investor row
	var acme models.Investor
	if err := db.Where("name = ?", "Acme Wealth").First(&acme).Error; err != nil {
		t.Fatalf("find Acme Wealth: %v", err)
	}
	var acmeCommitments []models.Commitment
	if err := db.Where("investor_id = ?", acme.ID).Find(&acmeCommitments).Error; err != nil {
		t.Fatalf("find commitments: %v", err)
	}
	if len(acmeCommitments) != 2 {
		t.Errorf("Acme commitment count = %d, want 2", len(acmeCommitments))
	}
	total := decimal.Zero
	for _, c := range acmeCommitments {
		total = total.Add(c.Amount)
	}
	if total.StringFixed(2) != "1500000.00" {
		t.Errorf("Acme total = %s, want 1500000.00", total.StringFixed(2))
	}
}

func TestSeederRun_Idempotent(t *testing.T) {
	db := newTestDB(t)
	path := writeSeedFile(t, "data.csv", sampleHeader+"\n"+
		"Ioo Gryffindor fund,fund manager,Singapore,2000-07-06,2024-02-21,Infrastructure,15000000.00,GBP\n")

	first, err := NewSeeder(db, path).Run()
	if err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	if first != 1 {
		t.Errorf("first Run() = %d, want 1", first)
	}

	second, err := NewSeeder(db, path).Run()
	if err != nil {
		t.Fatalf("second Run() error = %v, want nil", err)
	}
	if second != 0 {
		t.Errorf("second Run() = %d, want 0", second)
	}

	if got := countRows(t, db, &models.Investor{}); got != 1 {
		t.Errorf("investor count = %d, want 1", got)
	}
	if got := countRows(t, db, &models.Commitment{}); got != 1 {
		t.Errorf("commitment count = %d, want 1", got)
	}
}

func TestSeederRun_MissingFileIsNotFatal(t *testing.T) {
	db := newTestDB(t)

	n, err := NewSeeder(db, filepath.Join(t.TempDir(), "nope.csv")).Run()
	if err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}
	if n != 0 {
		t.Errorf("Run() = %d, want 0", n)
	}
}

func TestSeederRun_MalformedSourceWritesNothing(t *testing.T) {
	db := newTestDB(t)
	path := writeSeedFile(t, "data.csv", sampleHeader+"\n"+
		"Acme Wealth,bank,United Kingdom,2010-06-08,2024-02-21,Infrastructure,1000000.00,GBP\n"+
		"Acme Wealth,bank,United Kingdom,2010-06-08,2024-02-21,Infrastructure,broken,GBP\n")

	_, err := NewSeeder(db, path).Run()
	if !errors.Is(err, ErrMalformedSource) {
		t.Fatalf("Run() error = %v, want ErrMalformedSource", err)
	}

	if got := countRows(t, db, &models.Investor{}); got != 0 {
		t.Errorf("investor count = %d, want 0", got)
	}
	if got := countRows(t, db, &models.Commitment{}); got != 0 {
		t.Errorf("commitment count = %d, want 0", got)
	}
}

func TestSeederRun_UnparseableDateFallsBack(t *testing.T) {
	db := newTestDB(t)
	path := writeSeedFile(t, "data.csv", sampleHeader+"\n"+
		"Ibx Skywalker ltd,asset manager,United States,what date,2024-02-21,Real Estate,90000000.00,USD\n")

	before := time.Now().UTC().Add(-time.Second)
	if _, err := NewSeeder(db, path).Run(); err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}
	after := time.Now().UTC().Add(time.Second)

	var inv models.Investor
	if err := db.First(&inv).Error; err != nil {
		t.Fatalf("find investor: %v", err)
	}
	if inv.DateAdded.Before(before) || inv.DateAdded.After(after) {
		t.Errorf("DateAdded = %v, want import-time fallback", inv.DateAdded)
	}
	// the parseable column is kept as-is
	if inv.LastUpdated.Format("2006-01-02") != "2024-02-21" {
		t.Errorf("LastUpdated = %v, want 2024-02-21", inv.LastUpdated)
	}
}

func TestParseDate_Layouts(t *testing.T) {
	fallback := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	testCases := map[string]string{
		"2000-07-06":           "2000-07-06",
		"2000-07-06 10:30:00":  "2000-07-06",
		"2000-07-06T10:30:00Z": "2000-07-06",
		"7/6/2000":             "2000-07-06",
	}
	for input, want := range testCases {
		got := parseDate(input, fallback)
		if got.Format("2006-01-02") != want {
			t.Errorf("parseDate(%q) = %v, want %s", input, got, want)
		}
	}

	for _, input := range []string{"", "not a date", "06-99-2000"} {
		if got := parseDate(input, fallback); !got.Equal(fallback) {
			t.Errorf("parseDate(%q) = %v, want fallback", input, got)
		}
	}
}
