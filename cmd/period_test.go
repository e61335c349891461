package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ronharel02/hilan-attendance/internal/config"
	"github.com/ronharel02/hilan-attendance/internal/model"
)

func TestResolvePeriod(t *testing.T) {
	cfg := config.Config{PayPeriodStartDay: 20}
	now := time.Date(2024, time.December, 21, 10, 0, 0, 0, time.Local)

	t.Run("no flags uses period containing now", func(t *testing.T) {
		period, err := resolvePeriod(cfg, "", 0, now)
		require.NoError(t, err)
		assert.Equal(t, "January 2025", period.Label())
		assert.True(t, period.Contains(now))
	})

	t.Run("month flag defaults year to now", func(t *testing.T) {
		period, err := resolvePeriod(cfg, "november", 0, now)
		require.NoError(t, err)
		assert.Equal(t, "November 2024", period.Label())
	})

	t.Run("month and year", func(t *testing.T) {
		period, err := resolvePeriod(cfg, "2", 2025, now)
		require.NoError(t, err)
		assert.Equal(t, "February 2025", period.Label())
		assert.Equal(t, 20, period.Start.Day())
		assert.Equal(t, time.January, period.Start.Month())
	})

	t.Run("year flag defaults month to now", func(t *testing.T) {
		period, err := resolvePeriod(cfg, "", 2023, now)
		require.NoError(t, err)
		assert.Equal(t, "December 2023", period.Label())
	})

	t.Run("bad month", func(t *testing.T) {
		_, err := resolvePeriod(cfg, "13", 0, now)
		assert.Error(t, err)
	})

	t.Run("bad start day", func(t *testing.T) {
		_, err := resolvePeriod(config.Config{PayPeriodStartDay: 31}, "", 0, now)
		assert.ErrorIs(t, err, model.ErrConfig)
	})
}
