package tools

import (
	"context"
	"errors"
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/cloud-ru/mortgage-calculator-go/internal/calculations"
	"github.com/cloud-ru/mortgage-calculator-go/internal/chart"
	"github.com/cloud-ru/mortgage-calculator-go/internal/config"
	"github.com/cloud-ru/mortgage-calculator-go/internal/export"
	"github.com/cloud-ru/mortgage-calculator-go/internal/metrics"
	"github.com/cloud-ru/mortgage-calculator-go/internal/validators"
)

// Названия инструментов
const (
	MonthlyPaymentTool       = "monthly_payment"
	AmortizationScheduleTool = "amortization_schedule"
	MortgageSummaryTool      = "mortgage_summary"
	ChartSeriesTool          = "chart_series"
)

// ErrUnknownTool возвращается реестром для незарегистрированного имени
var ErrUnknownTool = errors.New("unknown tool")

// ToolHandler представляет обработчик инструмента
type ToolHandler func(ctx context.Context, params map[string]interface{}) (interface{}, error)

// MonthlyPaymentResult - ответ инструмента monthly_payment
type MonthlyPaymentResult struct {
	Terms          calculations.LoanTerms `json:"terms"`
	MonthlyPayment float64                `json:"monthly_payment"`
}

// SummaryResult - ответ инструмента mortgage_summary
type SummaryResult struct {
	Summary calculations.Summary `json:"summary"`
	Metrics []export.Metric      `json:"metrics"`
}

// Registry хранит обработчики по именам
type Registry struct {
	handlers map[string]ToolHandler
}

// NewRegistry регистрирует все инструменты калькулятора
func NewRegistry(cfg *config.Config, tracer trace.Tracer) *Registry {
	return &Registry{
		handlers: map[string]ToolHandler{
			MonthlyPaymentTool:       MonthlyPaymentHandler(cfg, tracer),
			AmortizationScheduleTool: AmortizationScheduleHandler(cfg, tracer),
			MortgageSummaryTool:      MortgageSummaryHandler(cfg, tracer),
			ChartSeriesTool:          ChartSeriesHandler(cfg, tracer),
		},
	}
}

// Call вызывает инструмент по имени
func (r *Registry) Call(ctx context.Context, name string, params map[string]interface{}) (interface{}, error) {
	h, ok := r.handlers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	return h(ctx, params)
}

// Names возвращает отсортированный список инструментов
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MonthlyPaymentHandler обрабатывает запрос на расчет ежемесячного платежа
func MonthlyPaymentHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		return run(ctx, cfg, tracer, MonthlyPaymentTool, params, func(span trace.Span, terms calculations.LoanTerms) (interface{}, error) {
			payment, err := calculations.MonthlyPayment(terms.Principal, terms.AnnualRatePercent, terms.TermYears)
			if err != nil {
				return nil, err
			}
			span.SetAttributes(attribute.Float64("monthly_payment", payment))
			return &MonthlyPaymentResult{Terms: terms, MonthlyPayment: payment}, nil
		})
	}
}

// AmortizationScheduleHandler обрабатывает запрос на построение графика платежей.
// Необязательный параметр view выбирает часть графика (first12, last12, full, yearly).
func AmortizationScheduleHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		return run(ctx, cfg, tracer, AmortizationScheduleTool, params, func(span trace.Span, terms calculations.LoanTerms) (interface{}, error) {
			view, err := optionalString(params, "view")
			if err != nil {
				return nil, err
			}
			if err := calculations.CheckView(view); err != nil {
				return nil, err
			}

			result, err := calculations.Calculate(terms)
			if err != nil {
				return nil, err
			}
			metrics.SchedulePeriods.Observe(float64(len(result.Schedule)))

			if result.Schedule, err = result.Schedule.View(view); err != nil {
				return nil, err
			}

			span.SetAttributes(
				attribute.String("view", view),
				attribute.Float64("monthly_payment", result.Summary.MonthlyPayment),
				attribute.Float64("total_paid", result.Summary.TotalPaid),
			)
			return result, nil
		})
	}
}

// MortgageSummaryHandler обрабатывает запрос на сводку по ипотеке
func MortgageSummaryHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		return run(ctx, cfg, tracer, MortgageSummaryTool, params, func(span trace.Span, terms calculations.LoanTerms) (interface{}, error) {
			payment, err := calculations.MonthlyPayment(terms.Principal, terms.AnnualRatePercent, terms.TermYears)
			if err != nil {
				return nil, err
			}
			summary := calculations.Summarize(terms, payment)
			span.SetAttributes(attribute.Float64("total_interest", summary.TotalInterest))
			return &SummaryResult{Summary: summary, Metrics: export.SummaryMetrics(summary)}, nil
		})
	}
}

// ChartSeriesHandler возвращает данные для графиков
func ChartSeriesHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		return run(ctx, cfg, tracer, ChartSeriesTool, params, func(span trace.Span, terms calculations.LoanTerms) (interface{}, error) {
			schedule, err := calculations.GenerateSchedule(terms.Principal, terms.AnnualRatePercent, terms.TermYears)
			if err != nil {
				return nil, err
			}
			series := chart.NewSeries(schedule)
			return &series, nil
		})
	}
}

type computeFunc func(span trace.Span, terms calculations.LoanTerms) (interface{}, error)

// run выполняет общий для всех инструментов сценарий: параметры, спан, валидация, расчет, метрики
func run(ctx context.Context, cfg *config.Config, tracer trace.Tracer, toolName string,
	params map[string]interface{}, compute computeFunc) (interface{}, error) {

	_, span := tracer.Start(ctx, toolName)
	defer span.End()

	logger := log.WithField("tool", toolName)
	metrics.APICalls.WithLabelValues("tools", toolName, "started").Inc()

	terms, err := LoanTermsFromParams(params)
	if err == nil {
		span.SetAttributes(
			attribute.Float64("principal", terms.Principal),
			attribute.Float64("annual_rate_percent", terms.AnnualRatePercent),
			attribute.Int("term_years", terms.TermYears),
		)
		err = validators.CheckLoanTerms(cfg, terms)
	}
	if err != nil {
		span.SetAttributes(attribute.String("error", "validation_error"))
		span.SetStatus(codes.Error, err.Error())
		metrics.ToolCalls.WithLabelValues(toolName, "validation_error").Inc()
		metrics.CalculationErrors.WithLabelValues(toolName, "validation").Inc()
		metrics.APICalls.WithLabelValues("tools", toolName, "error").Inc()
		logger.WithError(err).Info("Rejected invalid parameters")
		return nil, fmt.Errorf("неверные параметры: %w", err)
	}

	result, err := compute(span, terms)
	if err != nil {
		errorType := "calculation"
		if errors.Is(err, calculations.ErrInvalidInput) {
			errorType = "validation"
		}
		span.SetAttributes(attribute.String("error", errorType+"_error"))
		span.SetStatus(codes.Error, err.Error())
		metrics.ToolCalls.WithLabelValues(toolName, "error").Inc()
		metrics.CalculationErrors.WithLabelValues(toolName, errorType).Inc()
		metrics.APICalls.WithLabelValues("tools", toolName, "error").Inc()
		logger.WithError(err).Warn("Calculation failed")
		return nil, fmt.Errorf("ошибка при выполнении расчета: %w", err)
	}

	span.SetAttributes(attribute.Bool("success", true))
	metrics.ToolCalls.WithLabelValues(toolName, "success").Inc()
	metrics.APICalls.WithLabelValues("tools", toolName, "success").Inc()
	logger.WithFields(log.Fields{
		"principal":           terms.Principal,
		"annual_rate_percent": terms.AnnualRatePercent,
		"term_years":          terms.TermYears,
	}).Debug("Calculation completed")

	return result, nil
}
