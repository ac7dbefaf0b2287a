package validators

import (
	"errors"
	"math"
	"testing"

	"github.com/cloud-ru/mortgage-calculator-go/internal/calculations"
	"github.com/cloud-ru/mortgage-calculator-go/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		MinPrincipal: 1000,
		MaxPrincipal: 10_000_000,
		MaxRate:      20,
		MaxTermYears: 50,
	}
}

func TestValidators(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		name      string
		validator func(*config.Config, interface{}) error
		value     interface{}
		wantError bool
	}{
		{
			name:      "valid principal",
			validator: func(cfg *config.Config, v interface{}) error { return CheckPrincipal(cfg, v.(float64)) },
			value:     300000.0,
			wantError: false,
		},
		{
			name:      "principal at lower bound",
			validator: func(cfg *config.Config, v interface{}) error { return CheckPrincipal(cfg, v.(float64)) },
			value:     1000.0,
			wantError: false,
		},
		{
			name:      "principal below minimum",
			validator: func(cfg *config.Config, v interface{}) error { return CheckPrincipal(cfg, v.(float64)) },
			value:     999.0,
			wantError: true,
		},
		{
			name:      "invalid principal zero",
			validator: func(cfg *config.Config, v interface{}) error { return CheckPrincipal(cfg, v.(float64)) },
			value:     0.0,
			wantError: true,
		},
		{
			name:      "principal above maximum",
			validator: func(cfg *config.Config, v interface{}) error { return CheckPrincipal(cfg, v.(float64)) },
			value:     10_000_001.0,
			wantError: true,
		},
		{
			name:      "principal infinity",
			validator: func(cfg *config.Config, v interface{}) error { return CheckPrincipal(cfg, v.(float64)) },
			value:     math.Inf(1),
			wantError: true,
		},
		{
			name:      "zero rate",
			validator: func(cfg *config.Config, v interface{}) error { return CheckRate(cfg, v.(float64)) },
			value:     0.0,
			wantError: false,
		},
		{
			name:      "max rate",
			validator: func(cfg *config.Config, v interface{}) error { return CheckRate(cfg, v.(float64)) },
			value:     20.0,
			wantError: false,
		},
		{
			name:      "invalid rate negative",
			validator: func(cfg *config.Config, v interface{}) error { return CheckRate(cfg, v.(float64)) },
			value:     -1.0,
			wantError: true,
		},
		{
			name:      "rate NaN",
			validator: func(cfg *config.Config, v interface{}) error { return CheckRate(cfg, v.(float64)) },
			value:     math.NaN(),
			wantError: true,
		},
		{
			name:      "valid term",
			validator: func(cfg *config.Config, v interface{}) error { return CheckTermYears(cfg, v.(int)) },
			value:     30,
			wantError: false,
		},
		{
			name:      "invalid term zero",
			validator: func(cfg *config.Config, v interface{}) error { return CheckTermYears(cfg, v.(int)) },
			value:     0,
			wantError: true,
		},
		{
			name:      "term above maximum",
			validator: func(cfg *config.Config, v interface{}) error { return CheckTermYears(cfg, v.(int)) },
			value:     51,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.validator(cfg, tt.value)
			if (err != nil) != tt.wantError {
				t.Errorf("validator error = %v, wantError %v", err, tt.wantError)
			}
			if err != nil && !errors.Is(err, calculations.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestCheckLoanTerms(t *testing.T) {
	cfg := testConfig()

	if err := CheckLoanTerms(cfg, calculations.LoanTerms{Principal: 300000, AnnualRatePercent: 6.5, TermYears: 30}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := CheckLoanTerms(cfg, calculations.LoanTerms{Principal: 300000, AnnualRatePercent: 6.5, TermYears: 60}); err == nil {
		t.Error("expected error for term above maximum")
	}
}
