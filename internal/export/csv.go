package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/cloud-ru/mortgage-calculator-go/internal/calculations"
	"github.com/cloud-ru/mortgage-calculator-go/pkg/utils"
)

// ScheduleHeader - заголовок CSV выгрузки графика
var ScheduleHeader = []string{
	"Payment_Number",
	"Payment_Amount",
	"Principal_Payment",
	"Interest_Payment",
	"Remaining_Balance",
}

// DisplayHeader - заголовок таблицы для человека
var DisplayHeader = []string{
	"Payment Number",
	"Payment Amount",
	"Principal Payment",
	"Interest Payment",
	"Remaining Balance",
}

// WriteScheduleCSV пишет график с полной точностью чисел, по строке на месяц
func WriteScheduleCSV(w io.Writer, schedule calculations.Schedule) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ScheduleHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, p := range schedule {
		record := []string{
			strconv.Itoa(p.PaymentNumber),
			formatRaw(p.PaymentAmount),
			formatRaw(p.PrincipalPortion),
			formatRaw(p.InterestPortion),
			formatRaw(p.RemainingBalance),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write payment %d: %w", p.PaymentNumber, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// DisplayRows форматирует график для таблицы: суммы в валюте с двумя знаками
func DisplayRows(schedule calculations.Schedule) [][]string {
	rows := make([][]string, 0, len(schedule))
	for _, p := range schedule {
		rows = append(rows, []string{
			strconv.Itoa(p.PaymentNumber),
			utils.FormatCurrency(p.PaymentAmount),
			utils.FormatCurrency(p.PrincipalPortion),
			utils.FormatCurrency(p.InterestPortion),
			utils.FormatCurrency(p.RemainingBalance),
		})
	}
	return rows
}

func formatRaw(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
