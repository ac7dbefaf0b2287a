package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ToolCalls счетчик вызовов инструментов
	ToolCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mortgage_tool_calls_total",
			Help: "Общее количество вызовов инструментов",
		},
		[]string{"tool_name", "status"},
	)

	// CalculationErrors счетчик ошибок расчетов
	CalculationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mortgage_calculation_errors_total",
			Help: "Количество ошибок расчетов",
		},
		[]string{"tool_name", "error_type"},
	)

	// APICalls счетчик HTTP запросов
	APICalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mortgage_api_calls_total",
			Help: "Вызовы HTTP API",
		},
		[]string{"service", "endpoint", "status"},
	)

	// SchedulePeriods распределение длины рассчитанных графиков
	SchedulePeriods = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mortgage_schedule_periods",
			Help:    "Количество периодов в рассчитанных графиках",
			Buckets: []float64{12, 60, 120, 180, 240, 360, 480, 600},
		},
	)

	// Exports счетчик выгрузок по форматам
	Exports = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mortgage_exports_total",
			Help: "Количество выгрузок графика и сводки",
		},
		[]string{"format"},
	)
)
