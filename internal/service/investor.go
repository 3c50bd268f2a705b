package service

import (
	"strings"
	"time"

	"investor-commitments/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InvestorService serves the read queries over the seeded store. It never
// writes; concurrent callers need no coordination.
type InvestorService struct {
	DB *gorm.DB
}

func NewInvestorService(db *gorm.DB) *InvestorService {
	return &InvestorService{DB: db}
}

// InvestorSummary is an investor with its commitment total. The total is
// a plain decimal sum of the commitment amounts, mixed currencies included;
// no conversion is applied.
type InvestorSummary struct {
	ID               uint            `json:"id"`
	Name             string          `json:"name"`
	Type             string          `json:"type"`
	Country          string          `json:"country"`
	DateAdded        time.Time       `json:"date_added"`
	LastUpdated      time.Time       `json:"last_updated"`
	TotalCommitments decimal.Decimal `json:"total_commitments"`
}

// ListInvestors returns every investor ordered by id, each with the sum of
// its commitments' amounts computed on the fly.
func (s *InvestorService) ListInvestors() ([]InvestorSummary, error) {
	var investors []models.Investor
	if err := s.DB.Preload("Commitments").Order("id ASC").Find(&investors).Error; err != nil {
		return nil, err
	}

	summaries := make([]InvestorSummary, 0, len(investors))
	for _, inv := range investors {
		total := decimal.Zero
		for _, c := range inv.Commitments {
			total = total.Add(c.Amount)
		}
		summaries = append(summaries, InvestorSummary{
			ID:               inv.ID,
			Name:             inv.Name,
			Type:             inv.Type,
			Country:          inv.Country,
			DateAdded:        inv.DateAdded,
			LastUpdated:      inv.LastUpdated,
			TotalCommitments: total,
		})
	}
	return summaries, nil
}

// ListCommitments returns the commitments of one investor ordered by id.
// A non-blank assetClass restricts the result to exact, case-sensitive
// matches. Zero matches is an empty slice, not an error.
func (s *InvestorService) ListCommitments(investorID uint, assetClass string) ([]models.Commitment, error) {
	q := s.DB.Where("investor_id = ?", investorID)
	if strings.TrimSpace(assetClass) != "" {
		q = q.Where("asset_class = ?", assetClass)
	}

	commitments := make([]models.Commitment, 0)
	if err := q.Order("id ASC").Find(&commitments).Error; err != nil {
		return nil, err
	}
	return commitments, nil
}

// ListAssetClasses returns the distinct asset classes across all
// commitments, sorted ascending.
func (s *InvestorService) ListAssetClasses() ([]string, error) {
	assetClasses := make([]string, 0)
	err := s.DB.Model(&models.Commitment{}).
		Distinct("asset_class").
		Order("asset_class ASC").
		Pluck("asset_class", &assetClasses).Error
	if err != nil {
		return nil, err
	}
	return assetClasses, nil
}
