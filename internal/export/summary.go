package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cloud-ru/mortgage-calculator-go/internal/calculations"
	"github.com/cloud-ru/mortgage-calculator-go/pkg/utils"
)

// Metric - пара "показатель / значение" в сводке
type Metric struct {
	Name  string `json:"metric"`
	Value string `json:"value"`
}

// SummaryMetrics возвращает показатели сводки в отформатированном виде
func SummaryMetrics(s calculations.Summary) []Metric {
	return []Metric{
		{Name: "Loan Amount", Value: utils.FormatCurrency(s.Principal)},
		{Name: "Interest Rate", Value: formatRate(s.AnnualRatePercent) + "%"},
		{Name: "Loan Term", Value: strconv.Itoa(s.TermYears) + " years"},
		{Name: "Monthly Payment", Value: utils.FormatCurrency(s.MonthlyPayment)},
		{Name: "Total Paid", Value: utils.FormatCurrency(s.TotalPaid)},
		{Name: "Total Interest", Value: utils.FormatCurrency(s.TotalInterest)},
		{Name: "Interest/Principal Ratio", Value: utils.FormatPercent(s.InterestPercent(), 1)},
	}
}

// WriteSummaryCSV пишет сводку как пары Metric,Value
func WriteSummaryCSV(w io.Writer, s calculations.Summary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Metric", "Value"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, m := range SummaryMetrics(s) {
		if err := cw.Write([]string{m.Name, m.Value}); err != nil {
			return fmt.Errorf("failed to write metric %q: %w", m.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ScheduleFilename возвращает имя файла выгрузки графика
func ScheduleFilename(terms calculations.LoanTerms, ext string) string {
	return fmt.Sprintf("mortgage_schedule_%s.%s", filenameSuffix(terms), ext)
}

// SummaryFilename возвращает имя файла выгрузки сводки
func SummaryFilename(terms calculations.LoanTerms) string {
	return fmt.Sprintf("mortgage_summary_%s.csv", filenameSuffix(terms))
}

func filenameSuffix(terms calculations.LoanTerms) string {
	return fmt.Sprintf("%s_%s_%dy",
		utils.FormatNumber(terms.Principal),
		formatRate(terms.AnnualRatePercent),
		terms.TermYears)
}

// formatRate всегда оставляет дробную часть: 0 -> "0.0", 6.5 -> "6.5"
func formatRate(rate float64) string {
	s := utils.FormatNumber(rate)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
