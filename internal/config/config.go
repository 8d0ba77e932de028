package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/certprep/backend/internal/srs"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Questions QuestionsConfig `mapstructure:"questions"`
	SRS       SRSConfig       `mapstructure:"srs"`
	Quiz      QuizConfig      `mapstructure:"quiz"`
	Auth      AuthConfig      `mapstructure:"auth"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type QuestionsConfig struct {
	CSVPath string `mapstructure:"csv_path"`
}

type SRSConfig struct {
	// IntervalDays maps SRS level to the number of days until the next
	// review. Must have one entry per level and be non-decreasing.
	IntervalDays []int `mapstructure:"interval_days"`
}

type QuizConfig struct {
	ReviewRatio float64 `mapstructure:"review_ratio"`
	DefaultSize int     `mapstructure:"default_size"`
	MaxSize     int     `mapstructure:"max_size"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/certprep")
	}

	v.SetDefault("server.port", "8080")
	v.SetDefault("questions.csv_path", "")
	v.SetDefault("srs.interval_days", srs.DefaultIntervals)
	v.SetDefault("quiz.review_ratio", 0.3)
	v.SetDefault("quiz.default_size", 10)
	v.SetDefault("quiz.max_size", 50)

	// Secrets come from the environment only, never the config file.
	if err := v.BindEnv("database.url", "DATABASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind DATABASE_URL environment variable: %w", err)
	}
	if err := v.BindEnv("auth.jwt_secret", "JWT_SECRET"); err != nil {
		return nil, fmt.Errorf("failed to bind JWT_SECRET environment variable: %w", err)
	}
	if err := v.BindEnv("server.port", "PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind PORT environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if err := srs.ValidateIntervals(c.SRS.IntervalDays); err != nil {
		return fmt.Errorf("srs.interval_days: %w", err)
	}
	if c.Quiz.ReviewRatio < 0 || c.Quiz.ReviewRatio > 1 {
		return fmt.Errorf("quiz.review_ratio must be between 0 and 1, got %g", c.Quiz.ReviewRatio)
	}
	if c.Quiz.DefaultSize < 1 {
		return fmt.Errorf("quiz.default_size must be at least 1, got %d", c.Quiz.DefaultSize)
	}
	if c.Quiz.MaxSize < c.Quiz.DefaultSize {
		return fmt.Errorf("quiz.max_size (%d) must not be below quiz.default_size (%d)", c.Quiz.MaxSize, c.Quiz.DefaultSize)
	}
	return nil
}
