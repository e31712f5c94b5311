package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	// MoneyScale is the number of fraction digits kept for monetary values.
	MoneyScale = 2
	// RateScale is the number of fraction digits kept for interest rates.
	RateScale = 4

	maxCustomerIDLength    = 50
	maxAccountNameLength   = 100
	maxBranchCodeLength    = 10
	maxRoutingNumberLength = 20
	maxIBANLength          = 34
	maxSwiftCodeLength     = 11
	maxDescriptionLength   = 255
	maxReferenceLength     = 50
	maxReasonLength        = 255
)

var (
	// Regex pattern for validating decimal amounts with up to 2 decimal places
	amountPattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

	// Interest rates carry up to 4 decimal places
	ratePattern = regexp.MustCompile(`^\d+(\.\d{1,4})?$`)

	maxInterestRate = decimal.NewFromInt(100)
)

// ParseAmount parses a strictly positive monetary amount with up to 2 decimal places.
func ParseAmount(value string) (decimal.Decimal, error) {
	amount, err := ParseNonNegativeAmount(value)
	if err != nil {
		return decimal.Zero, err
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: amount must be positive", ErrInvalidArgument)
	}
	return amount, nil
}

// ParseNonNegativeAmount parses a monetary amount that may be zero.
func ParseNonNegativeAmount(value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, fmt.Errorf("%w: amount value cannot be empty", ErrInvalidArgument)
	}

	if !amountPattern.MatchString(value) {
		return decimal.Zero, fmt.Errorf("%w: invalid amount format: must be a non-negative decimal with up to 2 decimal places", ErrInvalidArgument)
	}

	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: invalid amount: %v", ErrInvalidArgument, err)
	}
	return amount, nil
}

// ParseInterestRate parses an interest rate percentage between 0 and 100.
func ParseInterestRate(value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, nil
	}
	if !ratePattern.MatchString(value) {
		return decimal.Zero, fmt.Errorf("%w: invalid interest rate format: up to 4 decimal places expected", ErrInvalidArgument)
	}
	rate, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: invalid interest rate: %v", ErrInvalidArgument, err)
	}
	if rate.GreaterThan(maxInterestRate) {
		return decimal.Zero, fmt.Errorf("%w: interest rate cannot exceed 100", ErrInvalidArgument)
	}
	return rate, nil
}

// validateMoney checks a decimal already in memory against the money rules.
func validateMoney(field string, v decimal.Decimal, allowZero bool) error {
	if v.IsNegative() || (!allowZero && v.IsZero()) {
		return fmt.Errorf("%w: %s must be positive", ErrInvalidArgument, field)
	}
	if !v.Equal(v.Truncate(MoneyScale)) {
		return fmt.Errorf("%w: %s cannot have more than 2 decimal places", ErrInvalidArgument, field)
	}
	return nil
}

func validateRate(v decimal.Decimal) error {
	if v.IsNegative() || v.GreaterThan(maxInterestRate) {
		return fmt.Errorf("%w: interest rate must be between 0 and 100", ErrInvalidArgument)
	}
	if !v.Equal(v.Truncate(RateScale)) {
		return fmt.Errorf("%w: interest rate cannot have more than 4 decimal places", ErrInvalidArgument)
	}
	return nil
}

// ValidateCurrencyCode validates that a currency code follows ISO 4217 format.
func ValidateCurrencyCode(code string) error {
	if code == "" {
		return fmt.Errorf("%w: currency code cannot be empty", ErrInvalidArgument)
	}

	if len(code) != 3 {
		return fmt.Errorf("%w: currency code must be 3 characters (ISO 4217)", ErrInvalidArgument)
	}

	// Check if all characters are uppercase letters
	for _, c := range code {
		if c < 'A' || c > 'Z' {
			return fmt.Errorf("%w: currency code must contain only uppercase letters", ErrInvalidArgument)
		}
	}

	return nil
}

func checkLength(field, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return fmt.Errorf("%w: %s cannot exceed %d characters", ErrInvalidArgument, field, max)
	}
	return nil
}

func checkRequired(field, value string, max int) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidArgument, field)
	}
	return checkLength(field, value, max)
}
