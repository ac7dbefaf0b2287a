package calculations

import "fmt"

// Названия представлений таблицы графика
const (
	ViewFirst12 = "first12"
	ViewLast12  = "last12"
	ViewFull    = "full"
	ViewYearly  = "yearly"
)

// Views перечисляет поддерживаемые представления
var Views = []string{ViewFirst12, ViewLast12, ViewFull, ViewYearly}

// First возвращает первые n платежей
func (s Schedule) First(n int) Schedule {
	if n < 0 {
		n = 0
	}
	if n > len(s) {
		n = len(s)
	}
	return s[:n:n]
}

// Last возвращает последние n платежей
func (s Schedule) Last(n int) Schedule {
	if n < 0 {
		n = 0
	}
	if n > len(s) {
		n = len(s)
	}
	return s[len(s)-n:]
}

// EveryNth возвращает платежи 1, 1+n, 1+2n, ...
func (s Schedule) EveryNth(n int) Schedule {
	if n <= 1 {
		return s
	}
	out := make(Schedule, 0, (len(s)+n-1)/n)
	for i := 0; i < len(s); i += n {
		out = append(out, s[i])
	}
	return out
}

// CheckView проверяет название представления
func CheckView(name string) error {
	if name == "" {
		return nil
	}
	for _, v := range Views {
		if v == name {
			return nil
		}
	}
	return fmt.Errorf("%w: unknown view %q", ErrInvalidInput, name)
}

// View возвращает часть графика по названию представления. Пустое имя - полный график.
func (s Schedule) View(name string) (Schedule, error) {
	switch name {
	case ViewFirst12:
		return s.First(monthsPerYear), nil
	case ViewLast12:
		return s.Last(monthsPerYear), nil
	case ViewFull, "":
		return s, nil
	case ViewYearly:
		return s.EveryNth(monthsPerYear), nil
	default:
		return nil, fmt.Errorf("%w: unknown view %q", ErrInvalidInput, name)
	}
}
