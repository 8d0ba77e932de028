package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{}\n"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []int{0, 1, 3, 7, 14, 30}, cfg.SRS.IntervalDays)
	assert.Equal(t, 0.3, cfg.Quiz.ReviewRatio)
	assert.Equal(t, 10, cfg.Quiz.DefaultSize)
	assert.Equal(t, 50, cfg.Quiz.MaxSize)
}

func TestLoadOverridesFromFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
server:
  port: "9000"
questions:
  csv_path: /data/questions.csv
srs:
  interval_days: [0, 2, 4, 8, 16, 32]
quiz:
  review_ratio: 0.5
  default_size: 20
  max_size: 40
`))
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "/data/questions.csv", cfg.Questions.CSVPath)
	assert.Equal(t, []int{0, 2, 4, 8, 16, 32}, cfg.SRS.IntervalDays)
	assert.Equal(t, 0.5, cfg.Quiz.ReviewRatio)
	assert.Equal(t, 20, cfg.Quiz.DefaultSize)
}

func TestLoadRejectsBadIntervals(t *testing.T) {
	_, err := Load(writeConfig(t, "srs:\n  interval_days: [0, 5, 3, 7, 14, 30]\n"))
	assert.Error(t, err)
}

func TestLoadRejectsBadReviewRatio(t *testing.T) {
	_, err := Load(writeConfig(t, "quiz:\n  review_ratio: 1.5\n"))
	assert.Error(t, err)
}

func TestLoadRejectsMaxBelowDefault(t *testing.T) {
	_, err := Load(writeConfig(t, "quiz:\n  default_size: 30\n  max_size: 20\n"))
	assert.Error(t, err)
}
