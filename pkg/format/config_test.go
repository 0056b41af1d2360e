package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webcalc/calckit/pkg/format"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults without environment", func(t *testing.T) {
		cfg, err := format.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "en-US", cfg.Locale)
		assert.Equal(t, "USD", cfg.Currency)
		assert.Equal(t, 2, cfg.Decimals)
	})

	t.Run("reads environment overrides", func(t *testing.T) {
		t.Setenv("CALCKIT_LOCALE", "de-DE")
		t.Setenv("CALCKIT_CURRENCY", "EUR")
		t.Setenv("CALCKIT_DECIMALS", "3")

		cfg, err := format.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "de-DE", cfg.Locale)
		assert.Equal(t, "EUR", cfg.Currency)
		assert.Equal(t, 3, cfg.Decimals)
	})

	t.Run("unparsable value reports ErrParsingConfig", func(t *testing.T) {
		t.Setenv("CALCKIT_DECIMALS", "lots")

		_, err := format.LoadConfig()
		assert.ErrorIs(t, err, format.ErrParsingConfig)
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("builds configured formatter", func(t *testing.T) {
		f := format.NewFromConfig(format.Config{Locale: "de-DE", Currency: "EUR", Decimals: 2})
		assert.Equal(t, "€1.050,00", f.FormatCurrency(1050))
	})

	t.Run("falls back on unknown locale and currency", func(t *testing.T) {
		f := format.NewFromConfig(format.Config{Locale: "!!invalid!!", Currency: "??", Decimals: 2})
		assert.Equal(t, "$1,050.00", f.FormatCurrency(1050))
	})
}
