package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"quizdesk/pkg/validator"
)

type Config struct {
	Env   string      `mapstructure:"env" validate:"oneof=development production"`
	DB    DBConfig    `mapstructure:"db"`
	Admin AdminConfig `mapstructure:"admin"`
	Quiz  QuizConfig  `mapstructure:"quiz"`
}

type DBConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

type AdminConfig struct {
	Password         string `mapstructure:"password" validate:"required"`
	StrictDuplicates bool   `mapstructure:"strict_duplicates"`
}

type QuizConfig struct {
	MaxQuestions int `mapstructure:"max_questions" validate:"min=1,max=100"`
}

func Init() (*Config, error) {
	// A missing .env is fine; env vars still apply.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("env", "development")
	v.SetDefault("db.path", "quizdesk.db")
	v.SetDefault("admin.password", "admin")
	v.SetDefault("admin.strict_duplicates", true)
	v.SetDefault("quiz.max_questions", 10)

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}
	v.AddConfigPath("configs")
	v.SetConfigName(configName)

	if err := v.BindEnv("env", "QUIZDESK_ENV"); err != nil {
		return nil, fmt.Errorf("failed to bind QUIZDESK_ENV: %w", err)
	}
	if err := v.BindEnv("db.path", "QUIZDESK_DB_PATH"); err != nil {
		return nil, fmt.Errorf("failed to bind QUIZDESK_DB_PATH: %w", err)
	}
	if err := v.BindEnv("admin.password", "QUIZDESK_ADMIN_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind QUIZDESK_ADMIN_PASSWORD: %w", err)
	}
	if err := v.BindEnv("quiz.max_questions", "QUIZDESK_MAX_QUESTIONS"); err != nil {
		return nil, fmt.Errorf("failed to bind QUIZDESK_MAX_QUESTIONS: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		// The defaults are complete, so a missing config file is not fatal.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
