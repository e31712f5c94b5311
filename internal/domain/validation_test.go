package domain

import (
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "integer", input: "100", expected: "100.00"},
		{name: "two decimals", input: "100.50", expected: "100.50"},
		{name: "one decimal", input: "0.5", expected: "0.50"},
		{name: "surrounding spaces", input: " 12.34 ", expected: "12.34"},
		{name: "empty", input: "", wantErr: true},
		{name: "zero", input: "0.00", wantErr: true},
		{name: "negative", input: "-1.00", wantErr: true},
		{name: "three decimals", input: "1.234", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "exponent", input: "1e3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("expected ErrInvalidArgument, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.StringFixed(MoneyScale) != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got.StringFixed(MoneyScale))
			}
		})
	}
}

func TestParseNonNegativeAmountAllowsZero(t *testing.T) {
	got, err := ParseNonNegativeAmount("0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.IsZero() {
		t.Errorf("expected zero, got %s", got)
	}
}

func TestParseInterestRate(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"", false},
		{"0", false},
		{"2.5", false},
		{"3.1415", false},
		{"100", false},
		{"100.0001", true},
		{"1.23456", true},
		{"-1", true},
	}

	for _, tt := range tests {
		_, err := ParseInterestRate(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseInterestRate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestValidateCurrencyCode(t *testing.T) {
	tests := []struct {
		code    string
		wantErr bool
	}{
		{"USD", false},
		{"EUR", false},
		{"", true},
		{"usd", true},
		{"US", true},
		{"USDT", true},
		{"U$D", true},
	}

	for _, tt := range tests {
		err := ValidateCurrencyCode(tt.code)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateCurrencyCode(%q) error = %v, wantErr %v", tt.code, err, tt.wantErr)
		}
	}
}
