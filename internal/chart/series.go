package chart

import "github.com/cloud-ru/mortgage-calculator-go/internal/calculations"

// Series содержит данные двух графиков: платежи по телу/процентам и остаток долга
type Series struct {
	PaymentNumbers []int     `json:"payment_numbers"`
	Principal      []float64 `json:"principal_payment"`
	Interest       []float64 `json:"interest_payment"`
	Balance        []float64 `json:"remaining_balance"`
}

// NewSeries раскладывает график платежей по колонкам
func NewSeries(schedule calculations.Schedule) Series {
	s := Series{
		PaymentNumbers: make([]int, len(schedule)),
		Principal:      make([]float64, len(schedule)),
		Interest:       make([]float64, len(schedule)),
		Balance:        make([]float64, len(schedule)),
	}
	for i, p := range schedule {
		s.PaymentNumbers[i] = p.PaymentNumber
		s.Principal[i] = p.PrincipalPortion
		s.Interest[i] = p.InterestPortion
		s.Balance[i] = p.RemainingBalance
	}
	return s
}

// Len возвращает количество точек
func (s Series) Len() int {
	return len(s.PaymentNumbers)
}
