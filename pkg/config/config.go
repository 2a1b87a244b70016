package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/todmy/forecast-values/pkg/models"
)

type Config struct {
	Logging    LoggingConfig
	Screening  ScreeningConfig
	Thresholds []models.ThresholdDeclaration
}

type LoggingConfig struct {
	Level      string
	Format     string
	OutputPath string
}

type ScreeningConfig struct {
	ProbabilityWarnOnEdge bool
	MissingCheck          bool
}

// Load reads configuration from configFile, or searches the default locations
// when configFile is empty. Environment variables prefixed with FVALUES_
// override file values.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/forecast-values")
	}

	v.SetEnvPrefix("FVALUES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.outputPath", "stderr")

	v.SetDefault("screening.probabilityWarnOnEdge", true)
	v.SetDefault("screening.missingCheck", true)
}
