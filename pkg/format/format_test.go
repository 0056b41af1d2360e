package format_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"github.com/webcalc/calckit/pkg/format"
)

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	t.Run("groups and pads decimals for en-US", func(t *testing.T) {
		f := format.New()
		assert.Equal(t, "1,234.50", f.FormatNumber(1234.5, 2))
	})

	t.Run("zero decimals", func(t *testing.T) {
		f := format.New()
		assert.Equal(t, "1,234", f.FormatNumber(1234.4, 0))
	})

	t.Run("negative decimals selects formatter default", func(t *testing.T) {
		f := format.New(format.WithDecimals(3))
		assert.Equal(t, "7.000", f.FormatNumber(7, -1))
	})

	t.Run("german locale swaps separators", func(t *testing.T) {
		f := format.New(format.WithLocale(language.German))
		assert.Equal(t, "1.234,50", f.FormatNumber(1234.5, 2))
	})

	t.Run("non-finite input renders as zero", func(t *testing.T) {
		f := format.New()
		assert.Equal(t, "0.00", f.FormatNumber(math.NaN(), 2))
		assert.Equal(t, "0.00", f.FormatNumber(math.Inf(1), 2))
		assert.Equal(t, "0.00", f.FormatNumber(math.Inf(-1), 2))
	})
}

func TestFormatPercentage(t *testing.T) {
	t.Parallel()

	t.Run("appends percent sign without rescaling", func(t *testing.T) {
		f := format.New()
		assert.Equal(t, "7.50%", f.FormatPercentage(7.5, 2))
	})

	t.Run("non-finite input renders as zero", func(t *testing.T) {
		f := format.New()
		assert.Equal(t, "0.00%", f.FormatPercentage(math.NaN(), 2))
	})
}

func TestFormatCurrency(t *testing.T) {
	t.Parallel()

	t.Run("usd uses two fraction digits", func(t *testing.T) {
		f := format.New()
		assert.Equal(t, "$1,050.00", f.FormatCurrency(1050))
	})

	t.Run("jpy uses zero fraction digits", func(t *testing.T) {
		f := format.New(format.WithCurrency(currency.JPY))
		assert.Equal(t, "¥1,050", f.FormatCurrency(1050))
	})

	t.Run("eur symbol", func(t *testing.T) {
		f := format.New(format.WithCurrency(currency.EUR))
		assert.Equal(t, "€1,050.00", f.FormatCurrency(1050))
	})

	t.Run("non-finite amount renders as zero", func(t *testing.T) {
		f := format.New()
		assert.Equal(t, "$0.00", f.FormatCurrency(math.NaN()))
	})
}

func TestPackageDefaults(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "$12.34", format.FormatCurrency(12.34))
	assert.Equal(t, "12.34", format.FormatNumber(12.34, 2))
	assert.Equal(t, "12.34%", format.FormatPercentage(12.34, 2))
}
