package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 65, cfg.Weeks)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 1_250_000.0, cfg.TargetSales)
	assert.Equal(t, 10.25, cfg.AvgTicket)
	assert.Equal(t, 4, cfg.PeakDays)
	assert.Equal(t, 4.5, cfg.PeakMultiplier)
	assert.Equal(t, 11, cfg.OpenHour)
	assert.Equal(t, 21, cfg.CloseHour)
	assert.Len(t, cfg.DowMult, 7)
	assert.Len(t, cfg.MonthMult, 12)

	require.NoError(t, cfg.Validate())
}

func TestStartDateParsing(t *testing.T) {
	cfg := Default()
	cfg.Start = "2024-01-01"
	require.NoError(t, cfg.resolveStart())

	want := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, want, cfg.StartDate())
}

func TestStartDateInvalid(t *testing.T) {
	cfg := Default()
	cfg.Start = "01/02/2024"
	assert.Error(t, cfg.resolveStart())
}

func TestDefaultStartEndsToday(t *testing.T) {
	cfg := Default()
	cfg.Weeks = 2
	require.NoError(t, cfg.resolveStart())

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	assert.Equal(t, today, cfg.EndDate())
	assert.Equal(t, 14, cfg.Days())
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero weeks", func(c *Config) { c.Weeks = 0 }},
		{"negative peak days", func(c *Config) { c.PeakDays = -1 }},
		{"more peaks than days", func(c *Config) { c.Weeks = 1; c.PeakDays = 8 }},
		{"zero target sales", func(c *Config) { c.TargetSales = 0 }},
		{"zero avg ticket", func(c *Config) { c.AvgTicket = 0 }},
		{"inverted hours", func(c *Config) { c.OpenHour = 21; c.CloseHour = 11 }},
		{"no customers", func(c *Config) { c.Customers = 0 }},
		{"short dow curve", func(c *Config) { c.DowMult = []float64{1, 1, 1} }},
		{"short month curve", func(c *Config) { c.MonthMult = []float64{1} }},
		{"negative sigma", func(c *Config) { c.NoiseSigma = -0.1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestApplyProfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	profile := `
peak_multiplier: 6.0
open_hour: 8
close_hour: 22
customers: 500
dow_mult: [1, 1, 1, 1, 1, 2, 2]
noise_sigma: 0.3
`
	require.NoError(t, os.WriteFile(path, []byte(profile), 0o644))

	cfg := Default()
	require.NoError(t, cfg.ApplyProfile(path))

	assert.Equal(t, 6.0, cfg.PeakMultiplier)
	assert.Equal(t, 8, cfg.OpenHour)
	assert.Equal(t, 22, cfg.CloseHour)
	assert.Equal(t, 500, cfg.Customers)
	assert.Equal(t, []float64{1, 1, 1, 1, 1, 2, 2}, cfg.DowMult)
	assert.Equal(t, 0.3, cfg.NoiseSigma)
	// Untouched knobs keep their defaults.
	assert.Equal(t, 20, cfg.Employees)
	assert.Len(t, cfg.MonthMult, 12)
}

func TestApplyProfileInvalid(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dow_mult: [1, 2]"), 0o644))

	cfg := Default()
	assert.Error(t, cfg.ApplyProfile(path), "a 2-value weekday curve must be rejected")

	assert.Error(t, cfg.ApplyProfile(filepath.Join(dir, "missing.yaml")))
}
