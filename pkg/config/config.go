package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all configuration for the data generators
type Config struct {
	Environment string           `mapstructure:"environment"`
	HR          HRConfig         `mapstructure:"hr"`
	Healthcare  HealthcareConfig `mapstructure:"healthcare"`
	Database    DatabaseConfig   `mapstructure:"database"`
}

// HRConfig holds settings for the HR snapshot generator
type HRConfig struct {
	Rows        int     `mapstructure:"rows" validate:"gt=0"`
	Output      string  `mapstructure:"output" validate:"required"`
	ChunkSize   int     `mapstructure:"chunk_size" validate:"gt=0"`
	Seed        int64   `mapstructure:"seed"`
	RepeatProb  float64 `mapstructure:"repeat_prob" validate:"gte=0,lte=1"`
	SeedLeaders int     `mapstructure:"seed_leaders" validate:"gte=0"`
	Progress    bool    `mapstructure:"progress"`
}

// HealthcareConfig holds settings for the healthcare star-schema generator
type HealthcareConfig struct {
	FactRows   int            `mapstructure:"fact_rows" validate:"gt=0"`
	OutputDir  string         `mapstructure:"output_dir" validate:"required"`
	Seed       int64          `mapstructure:"seed"`
	RepeatPct  float64        `mapstructure:"repeat_pct" validate:"gte=0,lte=1"`
	Progress   bool           `mapstructure:"progress"`
	Dimensions map[string]int `mapstructure:"dimensions" validate:"dive,gt=0"`
}

// DatabaseConfig holds the optional bulk-load target.
// When URL is empty the generators only write files.
type DatabaseConfig struct {
	URL             string        `mapstructure:"url"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DSN() string {
	return c.URL
}

var validate = validator.New()

// Validate checks the HR generator settings, failing fast on bad row
// counts, chunk sizes, or out-of-range probabilities.
func (c *HRConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid hr config: %w", err)
	}
	return nil
}

// Validate checks the healthcare generator settings
func (c *HealthcareConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid healthcare config: %w", err)
	}
	return nil
}

// Load loads configuration for the named tool from defaults, an optional
// YAML config file, environment variables (DATAGEN_ prefix) and, when a
// flag set is given, bound CLI flags. Flags take the highest precedence.
func Load(toolName string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if flags != nil {
		bindFlags(v, flags)
	}

	// Read from environment variables
	v.SetEnvPrefix("DATAGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read from config file if exists
	if path := flagValue(flags, "config"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(toolName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/medflow-datagen")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// bindFlags maps the CLI flag names each tool defines onto config keys.
// Flags the tool did not define are skipped.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	bindings := map[string]string{
		"hr.rows":               "rows",
		"hr.output":             "output",
		"hr.chunk_size":         "chunk",
		"hr.seed":               "seed",
		"hr.repeat_prob":        "repeat-prob",
		"hr.seed_leaders":       "seed-leaders",
		"hr.progress":           "progress",
		"healthcare.fact_rows":  "rows",
		"healthcare.output_dir": "output-dir",
		"healthcare.seed":       "seed",
		"healthcare.repeat_pct": "repeat-pct",
		"healthcare.progress":   "progress",
		"database.url":          "load-dsn",
	}
	for key, name := range bindings {
		if f := flags.Lookup(name); f != nil {
			_ = v.BindPFlag(key, f)
		}
	}
}

func flagValue(flags *pflag.FlagSet, name string) string {
	if flags == nil {
		return ""
	}
	if f := flags.Lookup(name); f != nil {
		return f.Value.String()
	}
	return ""
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")

	// HR generator defaults
	v.SetDefault("hr.rows", 100000)
	v.SetDefault("hr.output", "hr_employees.csv")
	v.SetDefault("hr.chunk_size", 10000)
	v.SetDefault("hr.seed", 0)
	v.SetDefault("hr.repeat_prob", 0.10)
	v.SetDefault("hr.seed_leaders", 50)
	v.SetDefault("hr.progress", false)

	// Healthcare generator defaults
	v.SetDefault("healthcare.fact_rows", 1000000)
	v.SetDefault("healthcare.output_dir", "healthcare_dataset")
	v.SetDefault("healthcare.seed", 0)
	v.SetDefault("healthcare.repeat_pct", 0.10)
	v.SetDefault("healthcare.progress", false)

	// Database defaults
	// Note: URL is intentionally not defaulted - bulk load only runs when set
	v.SetDefault("database.url", "")
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", 5*time.Minute)
}
