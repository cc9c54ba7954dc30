// Package config loads the settings of the jl tool from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strconv"

	"github.com/Rhymond/go-money"
	"github.com/etnz/jobledger"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding the file settings.
const (
	EnvCurrency      = "JOBLEDGER_CURRENCY"
	EnvPercentage    = "JOBLEDGER_TECH_PERCENTAGE"
	EnvPaymentMethod = "JOBLEDGER_PAYMENT_METHOD"
	EnvLogLevel      = "JOBLEDGER_LOG_LEVEL"
)

type Config struct {
	Currency   string `yaml:"currency"`
	Technician struct {
		Percentage float64 `yaml:"percentage"`
	} `yaml:"technician"`
	PaymentMethod string `yaml:"payment_method"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`

	Assist struct {
		Model string `yaml:"model"`
	} `yaml:"assist"`
}

// Default returns the configuration used when there is no file.
func Default() Config {
	var cfg Config
	cfg.Currency = jobledger.DefaultCurrency
	cfg.Technician.Percentage = float64(jobledger.DefaultTechnicianPercentage)
	cfg.PaymentMethod = jobledger.DefaultPaymentMethod
	cfg.Log.Level = "info"
	cfg.Assist.Model = "gemini-2.5-flash"
	return cfg
}

// Load reads the configuration file at path on top of the defaults.
//
// A missing file is not an error, the defaults are returned and exists is
// false.
func Load(path string) (cfg Config, exists bool, err error) {
	cfg = Default()
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, false, nil
	}
	if err != nil {
		return cfg, false, fmt.Errorf("could not read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, true, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return cfg, true, nil
}

// ApplyEnv loads the .env file if any, and overrides cfg with the
// JOBLEDGER_* environment variables.
func ApplyEnv(cfg Config) (Config, error) {
	// It's okay if the .env file doesn't exist
	_ = godotenv.Load()

	if v := os.Getenv(EnvCurrency); v != "" {
		cfg.Currency = v
	}
	if v := os.Getenv(EnvPaymentMethod); v != "" {
		cfg.PaymentMethod = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvPercentage); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvPercentage, v, err)
		}
		cfg.Technician.Percentage = p
	}
	return cfg, nil
}

var paymentToken = regexp.MustCompile(`^[a-z0-9_]+$`)

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs error
	if money.GetCurrency(c.Currency) == nil {
		errs = errors.Join(errs, fmt.Errorf("unknown currency %q", c.Currency))
	}
	if p := c.Technician.Percentage; p < 0 || p > 100 {
		errs = errors.Join(errs, fmt.Errorf("technician percentage %v is not in [0,100]", p))
	}
	if !paymentToken.MatchString(c.PaymentMethod) {
		errs = errors.Join(errs, fmt.Errorf("payment method %q must be a single lower case word", c.PaymentMethod))
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		errs = errors.Join(errs, fmt.Errorf("invalid log level %q: %w", c.Log.Level, err))
	}
	return errs
}

// Parser returns a closure parser using the configured defaults.
func (c Config) Parser() *jobledger.Parser {
	p := jobledger.NewParser()
	p.Currency = c.Currency
	p.Percentage = jobledger.Percent(c.Technician.Percentage)
	p.PaymentMethod = c.PaymentMethod
	return p
}
