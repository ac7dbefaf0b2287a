package calculations

import "math"

// GenerateSchedule строит помесячный график погашения ипотеки.
//
// В запись попадает остаток, ограниченный снизу нулем, а в следующий месяц переносится
// неограниченный остаток: иначе сумма погашенного тела перестает совпадать с principal.
// Последний платеж не корректируется, поэтому все платежи одинаковые.
func GenerateSchedule(principal, annualRatePercent float64, termYears int) (Schedule, error) {
	terms := LoanTerms{Principal: principal, AnnualRatePercent: annualRatePercent, TermYears: termYears}
	if err := terms.Validate(); err != nil {
		return nil, err
	}

	payment, err := monthlyPayment(terms)
	if err != nil {
		return nil, err
	}
	return amortize(terms, payment), nil
}

func amortize(terms LoanTerms, payment float64) Schedule {
	r := terms.MonthlyRate()
	n := terms.Months()

	schedule := make(Schedule, 0, n)
	remaining := terms.Principal

	for m := 1; m <= n; m++ {
		interest := remaining * r
		principalComponent := payment - interest
		remaining -= principalComponent

		schedule = append(schedule, PaymentPeriod{
			PaymentNumber:    m,
			PaymentAmount:    payment,
			PrincipalPortion: principalComponent,
			InterestPortion:  interest,
			RemainingBalance: math.Max(0, remaining),
		})
	}

	return schedule
}

// Calculate проверяет параметры и возвращает график вместе со сводкой
func Calculate(terms LoanTerms) (*Result, error) {
	if err := terms.Validate(); err != nil {
		return nil, err
	}

	payment, err := monthlyPayment(terms)
	if err != nil {
		return nil, err
	}

	return &Result{
		Terms:    terms,
		Summary:  Summarize(terms, payment),
		Schedule: amortize(terms, payment),
	}, nil
}
