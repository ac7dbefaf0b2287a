package calculations

// Summarize рассчитывает итоговые показатели по ежемесячному платежу
func Summarize(terms LoanTerms, monthlyPayment float64) Summary {
	months := terms.Months()
	totalPaid := monthlyPayment * float64(months)
	totalInterest := totalPaid - terms.Principal

	var ratio float64
	if terms.Principal > 0 {
		ratio = totalInterest / terms.Principal
	}

	return Summary{
		Principal:                terms.Principal,
		AnnualRatePercent:        terms.AnnualRatePercent,
		TermYears:                terms.TermYears,
		Months:                   months,
		MonthlyPayment:           monthlyPayment,
		TotalPaid:                totalPaid,
		TotalInterest:            totalInterest,
		InterestToPrincipalRatio: ratio,
	}
}

// TotalPrincipal суммирует погашенное тело кредита
func (s Schedule) TotalPrincipal() float64 {
	total := 0.0
	for _, p := range s {
		total += p.PrincipalPortion
	}
	return total
}

// TotalInterest суммирует выплаченные проценты
func (s Schedule) TotalInterest() float64 {
	total := 0.0
	for _, p := range s {
		total += p.InterestPortion
	}
	return total
}

// TotalPaid суммирует все платежи
func (s Schedule) TotalPaid() float64 {
	total := 0.0
	for _, p := range s {
		total += p.PaymentAmount
	}
	return total
}
