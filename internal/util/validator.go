package util

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidateInvestorName checks the import-time dedup key (non-empty, max 200 chars).
func ValidateInvestorName(name string) error {
	if name == "" {
		return fmt.Errorf("investor name is empty")
	}
	if len(name) > 200 {
		return fmt.Errorf("investor name too long, max 200 characters")
	}
	return nil
}

// ValidateLabel checks optional category-style fields such as investor type
// and country (max 100 chars, empty allowed).
func ValidateLabel(field, value string) error {
	if len(value) > 100 {
		return fmt.Errorf("%s too long, max 100 characters", field)
	}
	return nil
}

// ValidateAssetClass checks a commitment asset class (non-empty, max 100 chars).
func ValidateAssetClass(assetClass string) error {
	if assetClass == "" {
		return fmt.Errorf("asset class is empty")
	}
	if len(assetClass) > 100 {
		return fmt.Errorf("asset class too long, max 100 characters")
	}
	return nil
}

// ValidateCurrency checks a currency code (non-empty, max 10 chars).
func ValidateCurrency(currency string) error {
	if currency == "" {
		return fmt.Errorf("currency is empty")
	}
	if len(currency) > 10 {
		return fmt.Errorf("currency too long, max 10 characters")
	}
	return nil
}

// ValidateAmount checks a commitment amount (must not be negative).
func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("amount must not be negative, got %s", amount)
	}
	return nil
}
