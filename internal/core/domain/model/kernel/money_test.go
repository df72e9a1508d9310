package kernel_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("normalizes currency code", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.RequireFromString("19.99"), " usd ")

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, "USD", m.Currency())
		assert.True(t, decimal.RequireFromString("19.99").Equal(m.Amount()))
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		testCases := []struct {
			name     string
			amount   string
			currency string
			param    string
		}{
			{"negative amount", "-1.00", "USD", "amount"},
			{"three decimal places", "1.005", "USD", "amount"},
			{"short currency", "1.00", "US", "currency"},
			{"numeric currency", "1.00", "840", "currency"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewMoney(decimal.RequireFromString(tc.amount), tc.currency)

				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				assert.Contains(t, err.Error(), tc.param)
			})
		}
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var m kernel.Money

		require.ErrorIs(t, m.Validate(), kernel.ErrMoneyIsNotConstructed)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("add same currency", func(t *testing.T) {
		sum, err := kernel.MustMoney("10.50", "USD").Add(kernel.MustMoney("4.75", "USD"))

		require.NoError(t, err)
		assert.True(t, sum.IsEqual(kernel.MustMoney("15.25", "USD")))
	})

	t.Run("add different currency", func(t *testing.T) {
		_, err := kernel.MustMoney("10.50", "USD").Add(kernel.MustMoney("1.00", "EUR"))

		require.ErrorIs(t, err, kernel.ErrCurrencyMismatch)
	})

	t.Run("multiply by quantity", func(t *testing.T) {
		total, err := kernel.MustMoney("3.33", "USD").Multiply(3)

		require.NoError(t, err)
		assert.Equal(t, "$9.99", total.Format())
	})

	t.Run("multiply by negative quantity", func(t *testing.T) {
		_, err := kernel.MustMoney("3.33", "USD").Multiply(-1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Format(t *testing.T) {
	testCases := []struct {
		amount   string
		currency string
		expected string
	}{
		{"0", "USD", "$0.00"},
		{"5.5", "USD", "$5.50"},
		{"999.99", "USD", "$999.99"},
		{"1234.5", "USD", "$1,234.50"},
		{"1234567.89", "EUR", "€1,234,567.89"},
		{"12", "CHF", "CHF 12.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			m := kernel.MustMoney(tc.amount, tc.currency)

			assert.Equal(t, tc.expected, m.Format())
			assert.Equal(t, tc.expected, m.String())
		})
	}
}
