package calculations

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyPayment(t *testing.T) {
	tests := []struct {
		name              string
		principal         float64
		annualRatePercent float64
		termYears         int
		want              float64
		delta             float64
		wantError         bool
	}{
		{
			name:              "30 year mortgage",
			principal:         300000,
			annualRatePercent: 6.5,
			termYears:         30,
			want:              1896.20,
			delta:             0.01,
		},
		{
			name:              "zero rate is straight line",
			principal:         100000,
			annualRatePercent: 0,
			termYears:         10,
			want:              100000.0 / 120.0,
		},
		{
			name:              "short term high rate",
			principal:         1000,
			annualRatePercent: 20,
			termYears:         1,
			want:              92.63,
			delta:             0.01,
		},
		{
			name:              "zero principal",
			principal:         0,
			annualRatePercent: 5,
			termYears:         10,
			wantError:         true,
		},
		{
			name:              "negative rate",
			principal:         1000,
			annualRatePercent: -0.5,
			termYears:         10,
			wantError:         true,
		},
		{
			name:              "zero term",
			principal:         1000,
			annualRatePercent: 0,
			termYears:         0,
			wantError:         true,
		},
		{
			name:              "negative term",
			principal:         1000,
			annualRatePercent: 3,
			termYears:         -2,
			wantError:         true,
		},
		{
			name:              "term overflowing payment count",
			principal:         1000,
			annualRatePercent: 0,
			termYears:         math.MaxInt/12 + 1,
			wantError:         true,
		},
		{
			name:              "NaN principal",
			principal:         math.NaN(),
			annualRatePercent: 3,
			termYears:         5,
			wantError:         true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MonthlyPayment(tt.principal, tt.annualRatePercent, tt.termYears)
			if tt.wantError {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidInput), "expected ErrInvalidInput, got %v", err)
				return
			}
			require.NoError(t, err)
			if tt.delta == 0 {
				assert.Equal(t, tt.want, got)
			} else {
				assert.InDelta(t, tt.want, got, tt.delta)
			}
		})
	}
}

func TestMonthlyPaymentOverflow(t *testing.T) {
	_, err := MonthlyPayment(1000, 1e308, 50)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNumeric))
}

func TestMonthlyPaymentTinyRate(t *testing.T) {
	straight := 300000.0 / 360.0

	for _, rate := range []float64{1e-14, 1e-9, 1e-6} {
		got, err := MonthlyPayment(300000, rate, 30)
		require.NoError(t, err, "rate %g", rate)
		assert.GreaterOrEqual(t, got, straight-1e-9, "rate %g", rate)
		assert.InDelta(t, straight, got, 1e-2, "rate %g", rate)
	}
}

func TestLoanTerms(t *testing.T) {
	terms := LoanTerms{Principal: 250000, AnnualRatePercent: 6, TermYears: 15}

	assert.Equal(t, 180, terms.Months())
	assert.InDelta(t, 0.005, terms.MonthlyRate(), 1e-15)
	assert.NoError(t, terms.Validate())

	inf := LoanTerms{Principal: math.Inf(1), AnnualRatePercent: 6, TermYears: 15}
	assert.ErrorIs(t, inf.Validate(), ErrInvalidInput)
}
