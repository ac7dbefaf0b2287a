package calculations

import (
	"errors"
	"fmt"

	"github.com/cloud-ru/mortgage-calculator-go/pkg/utils"
)

// ErrInvalidInput возвращается, когда параметры кредита вне допустимой области
var ErrInvalidInput = errors.New("invalid input")

const monthsPerYear = 12

// maxTermYears ограничивает срок, чтобы количество платежей оставалось разумным
// и TermYears*12 не переполнял int
const maxTermYears = 1000

// LoanTerms описывает параметры ипотеки
type LoanTerms struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	TermYears         int     `json:"term_years"`
}

// Months возвращает количество платежей
func (t LoanTerms) Months() int {
	return t.TermYears * monthsPerYear
}

// MonthlyRate возвращает месячную ставку в долях
func (t LoanTerms) MonthlyRate() float64 {
	return t.AnnualRatePercent / 100.0 / monthsPerYear
}

// Validate проверяет, что параметры лежат в области определения расчета.
// Диапазоны интерфейса (минимальная сумма, максимальная ставка и т.д.) проверяет пакет validators.
func (t LoanTerms) Validate() error {
	if !utils.IsFinite(t.Principal) || t.Principal <= 0 {
		return fmt.Errorf("%w: principal must be positive, got %v", ErrInvalidInput, t.Principal)
	}
	if !utils.IsFinite(t.AnnualRatePercent) || t.AnnualRatePercent < 0 {
		return fmt.Errorf("%w: annual_rate_percent must be non-negative, got %v", ErrInvalidInput, t.AnnualRatePercent)
	}
	if t.TermYears <= 0 {
		return fmt.Errorf("%w: term_years must be at least 1, got %d", ErrInvalidInput, t.TermYears)
	}
	if t.TermYears > maxTermYears {
		return fmt.Errorf("%w: term_years must be at most %d, got %d", ErrInvalidInput, maxTermYears, t.TermYears)
	}
	return nil
}

// PaymentPeriod представляет один месяц графика платежей
type PaymentPeriod struct {
	PaymentNumber    int     `json:"payment_number"`
	PaymentAmount    float64 `json:"payment_amount"`
	PrincipalPortion float64 `json:"principal_payment"`
	InterestPortion  float64 `json:"interest_payment"`
	RemainingBalance float64 `json:"remaining_balance"`
}

// Schedule - упорядоченный график платежей
type Schedule []PaymentPeriod

// Summary представляет сводку по ипотеке
type Summary struct {
	Principal                float64 `json:"principal"`
	AnnualRatePercent        float64 `json:"annual_rate_percent"`
	TermYears                int     `json:"term_years"`
	Months                   int     `json:"months"`
	MonthlyPayment           float64 `json:"monthly_payment"`
	TotalPaid                float64 `json:"total_paid"`
	TotalInterest            float64 `json:"total_interest"`
	InterestToPrincipalRatio float64 `json:"interest_to_principal_ratio"`
}

// InterestPercent возвращает отношение процентов к телу кредита в процентах
func (s Summary) InterestPercent() float64 {
	return s.InterestToPrincipalRatio * 100
}

// Result представляет результат расчета ипотеки
type Result struct {
	Terms    LoanTerms `json:"terms"`
	Summary  Summary   `json:"summary"`
	Schedule Schedule  `json:"schedule"`
}
