package calculations

import (
	"errors"
	"fmt"
	"math"

	"github.com/cloud-ru/mortgage-calculator-go/pkg/utils"
)

// ErrNumeric возвращается, если формула дала бесконечность или NaN
var ErrNumeric = errors.New("численная ошибка")

// MonthlyPayment рассчитывает фиксированный ежемесячный платеж по аннуитетной формуле.
// При нулевой ставке платеж равен principal / (termYears*12).
func MonthlyPayment(principal, annualRatePercent float64, termYears int) (float64, error) {
	terms := LoanTerms{Principal: principal, AnnualRatePercent: annualRatePercent, TermYears: termYears}
	if err := terms.Validate(); err != nil {
		return 0, err
	}
	return monthlyPayment(terms)
}

func monthlyPayment(terms LoanTerms) (float64, error) {
	P := terms.Principal
	r := terms.MonthlyRate()
	n := float64(terms.Months())

	var payment float64
	if r == 0.0 {
		payment = P / n
	} else {
		// (1+r)^n и (1+r)^n-1 через Log1p/Expm1: при малых r Pow теряет точность в разности
		e := n * math.Log1p(r)
		payment = P * (r * math.Exp(e)) / math.Expm1(e)
	}

	if !utils.IsFinite(payment) {
		return 0, fmt.Errorf("%w: ежемесячный платеж не является конечным числом", ErrNumeric)
	}
	return payment, nil
}
