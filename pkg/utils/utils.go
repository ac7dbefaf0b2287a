package utils

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// IsFinite проверяет, является ли число конечным
func IsFinite(value float64) bool {
	return !math.IsInf(value, 0) && !math.IsNaN(value)
}

// FormatCurrency форматирует сумму как "$1,234.56"
func FormatCurrency(value float64) string {
	d := decimal.NewFromFloat(value).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	return sign + "$" + groupThousands(d.StringFixed(2))
}

// FormatPercent форматирует процент с заданным количеством знаков: "80.1%"
func FormatPercent(value float64, places int32) string {
	return decimal.NewFromFloat(value).StringFixed(places) + "%"
}

// FormatNumber выводит число без лишних нулей: 6.5 -> "6.5", 300000 -> "300000"
func FormatNumber(value float64) string {
	return decimal.NewFromFloat(value).String()
}

func groupThousands(fixed string) string {
	intPart, fracPart, _ := strings.Cut(fixed, ".")
	if len(intPart) <= 3 {
		return fixed
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	if fracPart != "" {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}
