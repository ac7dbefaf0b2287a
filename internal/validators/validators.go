package validators

import (
	"fmt"

	"github.com/cloud-ru/mortgage-calculator-go/internal/calculations"
	"github.com/cloud-ru/mortgage-calculator-go/internal/config"
	"github.com/cloud-ru/mortgage-calculator-go/pkg/utils"
)

// ValidateNumberRange проверяет, что число конечное и в допустимом диапазоне
func ValidateNumberRange(name string, value float64, minInclusive, maxInclusive float64) error {
	if !utils.IsFinite(value) {
		return fmt.Errorf("%w: %s: значение не является конечным числом", calculations.ErrInvalidInput, name)
	}
	if value < minInclusive {
		return fmt.Errorf("%w: %s: значение должно быть ≥ %g", calculations.ErrInvalidInput, name, minInclusive)
	}
	if value > maxInclusive {
		return fmt.Errorf("%w: %s: значение слишком велико (>%g)", calculations.ErrInvalidInput, name, maxInclusive)
	}
	return nil
}

// ValidateIntRange проверяет, что целое число в допустимом диапазоне
func ValidateIntRange(name string, value int, minInclusive, maxInclusive int) error {
	if value < minInclusive || value > maxInclusive {
		return fmt.Errorf("%w: %s: значение должно быть в диапазоне [%d; %d]", calculations.ErrInvalidInput, name, minInclusive, maxInclusive)
	}
	return nil
}

// CheckPrincipal проверяет сумму кредита
func CheckPrincipal(cfg *config.Config, principal float64) error {
	return ValidateNumberRange("principal", principal, cfg.MinPrincipal, cfg.MaxPrincipal)
}

// CheckRate проверяет процентную ставку
func CheckRate(cfg *config.Config, rate float64) error {
	return ValidateNumberRange("annual_rate_percent", rate, 0.0, cfg.MaxRate)
}

// CheckTermYears проверяет срок в годах
func CheckTermYears(cfg *config.Config, years int) error {
	return ValidateIntRange("term_years", years, 1, cfg.MaxTermYears)
}

// CheckLoanTerms проверяет все параметры ипотеки
func CheckLoanTerms(cfg *config.Config, terms calculations.LoanTerms) error {
	if err := CheckPrincipal(cfg, terms.Principal); err != nil {
		return err
	}
	if err := CheckRate(cfg, terms.AnnualRatePercent); err != nil {
		return err
	}
	return CheckTermYears(cfg, terms.TermYears)
}
