package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config is the full generation configuration. Defaults match the numbers
// the store has been seeded with historically (65 weeks, ~$1.25M sales).
type Config struct {
	Start       string  `mapstructure:"start"`
	Weeks       int     `mapstructure:"weeks"`
	Seed        int64   `mapstructure:"seed"`
	TargetSales float64 `mapstructure:"target_sales"`
	AvgTicket   float64 `mapstructure:"avg_ticket"`
	PeakDays    int     `mapstructure:"peak_days"`

	PeakMultiplier float64 `mapstructure:"peak_multiplier"`
	OpenHour       int     `mapstructure:"open_hour"`
	CloseHour      int     `mapstructure:"close_hour"`
	Customers      int     `mapstructure:"customers"`
	Employees      int     `mapstructure:"employees"`

	// Mon..Sun and Jan..Dec demand multipliers.
	DowMult    []float64 `mapstructure:"dow_mult"`
	MonthMult  []float64 `mapstructure:"month_mult"`
	NoiseSigma float64   `mapstructure:"noise_sigma"`

	startDate time.Time
}

// Profile is an optional YAML file overriding the demand-shape knobs that
// are otherwise hard-coded defaults. Zero values mean "keep the default".
type Profile struct {
	PeakMultiplier float64   `yaml:"peak_multiplier"`
	OpenHour       int       `yaml:"open_hour"`
	CloseHour      int       `yaml:"close_hour"`
	Customers      int       `yaml:"customers"`
	Employees      int       `yaml:"employees"`
	DowMult        []float64 `yaml:"dow_mult"`
	MonthMult      []float64 `yaml:"month_mult"`
	NoiseSigma     float64   `yaml:"noise_sigma"`
}

func Default() *Config {
	return &Config{
		Weeks:          65,
		Seed:           42,
		TargetSales:    1_250_000,
		AvgTicket:      10.25,
		PeakDays:       4,
		PeakMultiplier: 4.5,
		OpenHour:       11,
		CloseHour:      21,
		Customers:      2000,
		Employees:      20,
		DowMult:        []float64{0.90, 0.95, 1.00, 1.05, 1.15, 1.30, 1.20},
		MonthMult:      []float64{1.00, 0.98, 1.00, 1.02, 1.04, 1.06, 1.05, 1.05, 1.03, 1.05, 1.15, 1.18},
		NoiseSigma:     0.12,
	}
}

// Load builds the config from viper (flags, env, optional config file
// layered by the root command) on top of the defaults.
func Load() (*Config, error) {
	cfg := Default()

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if len(cfg.DowMult) == 0 {
		cfg.DowMult = Default().DowMult
	}
	if len(cfg.MonthMult) == 0 {
		cfg.MonthMult = Default().MonthMult
	}

	if err := cfg.resolveStart(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyProfile overlays a demand profile file onto the config.
func (c *Config) ApplyProfile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read profile %s: %w", path, err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("failed to parse profile %s: %w", path, err)
	}

	if p.PeakMultiplier > 0 {
		c.PeakMultiplier = p.PeakMultiplier
	}
	if p.OpenHour > 0 {
		c.OpenHour = p.OpenHour
	}
	if p.CloseHour > 0 {
		c.CloseHour = p.CloseHour
	}
	if p.Customers > 0 {
		c.Customers = p.Customers
	}
	if p.Employees > 0 {
		c.Employees = p.Employees
	}
	if len(p.DowMult) > 0 {
		c.DowMult = p.DowMult
	}
	if len(p.MonthMult) > 0 {
		c.MonthMult = p.MonthMult
	}
	if p.NoiseSigma > 0 {
		c.NoiseSigma = p.NoiseSigma
	}

	return c.Validate()
}

func (c *Config) resolveStart() error {
	if c.Start == "" {
		c.startDate = defaultStartForWeeks(c.Weeks)
		return nil
	}
	start, err := time.ParseInLocation("2006-01-02", c.Start, time.UTC)
	if err != nil {
		return fmt.Errorf("invalid start date %q (want YYYY-MM-DD): %w", c.Start, err)
	}
	c.startDate = start
	return nil
}

// StartDate returns the resolved first day of the range as a UTC midnight.
func (c *Config) StartDate() time.Time {
	if c.startDate.IsZero() {
		if err := c.resolveStart(); err != nil {
			c.startDate = defaultStartForWeeks(c.Weeks)
		}
	}
	return c.startDate
}

// EndDate is the last generated day, inclusive.
func (c *Config) EndDate() time.Time {
	return c.StartDate().AddDate(0, 0, c.Weeks*7-1)
}

// Days is the number of calendar days in the range.
func (c *Config) Days() int {
	return c.Weeks * 7
}

func (c *Config) Validate() error {
	if c.Weeks < 1 {
		return fmt.Errorf("weeks must be at least 1, got %d", c.Weeks)
	}
	if c.PeakDays < 0 {
		return fmt.Errorf("peak_days cannot be negative, got %d", c.PeakDays)
	}
	if c.PeakDays > c.Days() {
		return fmt.Errorf("peak_days %d exceeds the %d days in range", c.PeakDays, c.Days())
	}
	if c.TargetSales <= 0 {
		return fmt.Errorf("target_sales must be positive, got %v", c.TargetSales)
	}
	if c.AvgTicket <= 0 {
		return fmt.Errorf("avg_ticket must be positive, got %v", c.AvgTicket)
	}
	if c.OpenHour < 0 || c.CloseHour > 24 || c.OpenHour >= c.CloseHour {
		return fmt.Errorf("invalid opening hours %d..%d", c.OpenHour, c.CloseHour)
	}
	if c.Customers < 1 || c.Employees < 1 {
		return fmt.Errorf("need at least one customer and one employee (got %d, %d)", c.Customers, c.Employees)
	}
	if len(c.DowMult) != 7 {
		return fmt.Errorf("dow_mult must have 7 values, got %d", len(c.DowMult))
	}
	if len(c.MonthMult) != 12 {
		return fmt.Errorf("month_mult must have 12 values, got %d", len(c.MonthMult))
	}
	if c.NoiseSigma < 0 {
		return fmt.Errorf("noise_sigma cannot be negative, got %v", c.NoiseSigma)
	}
	return nil
}

// defaultStartForWeeks places the range so its last day is today.
func defaultStartForWeeks(weeks int) time.Time {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return today.AddDate(0, 0, -(weeks*7 - 1))
}
