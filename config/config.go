package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Port            string      `mapstructure:"port"`
	MongoURI        string      `mapstructure:"MONGODB_URI"`
	MongoDatabase   string      `mapstructure:"mongo_database"`
	RedisConfig     RedisConfig `mapstructure:"redis"`
	MaxUploadBytes  int64       `mapstructure:"max_upload_bytes"`
	SessionEventCap int         `mapstructure:"session_event_cap"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"db"`
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set up Viper to read from config file
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Set up Viper to read from environment variables
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Bind environment variables
	v.BindEnv("MONGODB_URI")
	v.BindEnv("redis.REDIS_PASSWORD", "REDIS_PASSWORD")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if config.Port == "" {
		config.Port = "8080"
	}
	if config.MongoDatabase == "" {
		config.MongoDatabase = "doclib"
	}
	if config.MaxUploadBytes == 0 {
		config.MaxUploadBytes = 10 << 20
	}
	if config.SessionEventCap == 0 {
		config.SessionEventCap = 16
	}

	return &config, nil
}
