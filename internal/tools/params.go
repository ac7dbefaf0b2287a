package tools

import (
	"fmt"
	"math"

	"github.com/cloud-ru/mortgage-calculator-go/internal/calculations"
)

// LoanTermsFromParams извлекает параметры ипотеки из запроса
func LoanTermsFromParams(params map[string]interface{}) (calculations.LoanTerms, error) {
	principal, err := requiredFloat(params, "principal")
	if err != nil {
		return calculations.LoanTerms{}, err
	}
	annualRatePercent, err := requiredFloat(params, "annual_rate_percent")
	if err != nil {
		return calculations.LoanTerms{}, err
	}
	yearsFloat, err := requiredFloat(params, "term_years")
	if err != nil {
		return calculations.LoanTerms{}, err
	}
	if yearsFloat != math.Trunc(yearsFloat) {
		return calculations.LoanTerms{}, fmt.Errorf("%w: term_years must be a whole number of years", calculations.ErrInvalidInput)
	}

	return calculations.LoanTerms{
		Principal:         principal,
		AnnualRatePercent: annualRatePercent,
		TermYears:         int(yearsFloat),
	}, nil
}

func requiredFloat(params map[string]interface{}, key string) (float64, error) {
	switch v := params[key].(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("%w: invalid parameter: %s", calculations.ErrInvalidInput, key)
	}
}

func optionalString(params map[string]interface{}, key string) (string, error) {
	raw, ok := params[key]
	if !ok || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: invalid parameter: %s", calculations.ErrInvalidInput, key)
	}
	return s, nil
}
