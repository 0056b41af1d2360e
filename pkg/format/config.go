package format

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// ErrParsingConfig is returned when environment variables cannot be parsed
// into a Config.
var ErrParsingConfig = errors.New("failed to parse formatting config")

// Config holds environment-driven formatting defaults.
type Config struct {
	Locale   string `env:"CALCKIT_LOCALE" envDefault:"en-US"`
	Currency string `env:"CALCKIT_CURRENCY" envDefault:"USD"`
	Decimals int    `env:"CALCKIT_DECIMALS" envDefault:"2"`
}

var defaultEnvLoaded sync.Once

// LoadConfig reads formatting defaults from the environment. A local .env
// file is loaded once if present; its absence is not an error.
func LoadConfig() (Config, error) {
	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// NewFromConfig builds a Formatter from a Config. Unknown locales or
// currency codes fall back to the formatter defaults rather than failing;
// widget display should degrade, not break, on a misconfigured environment.
func NewFromConfig(cfg Config) *Formatter {
	var opts []Option
	if tag, err := language.Parse(cfg.Locale); err == nil {
		opts = append(opts, WithLocale(tag))
	}
	if unit, err := currency.ParseISO(cfg.Currency); err == nil {
		opts = append(opts, WithCurrency(unit))
	}
	opts = append(opts, WithDecimals(cfg.Decimals))
	return New(opts...)
}
