// Copyright (C) 2025 Crash Override, Inc.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the FSF, either version 3 of the License, or (at your option) any later version.
// See the LICENSE file in the root of this repository for full license text or
// visit: <https://www.gnu.org/licenses/gpl-3.0.html>.

// Package config provides the global configuration for plotdeck.
package config

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config is the structure for the global configuration file for plotdeck.
// It is loaded from a config file at startup time, and values can be overridden
// by environment variables. The config file is expected to be in YAML format.
// Environment variables are expected to be prefixed with "PLOTDECK_", all capital
// and use underscores to separate nested keys. For example, the key
// "api.port" can be overridden by the environment variable "PLOTDECK_API_PORT".
type Config struct {
	// Environment is the environment that plotdeck is running in.
	Environment string `json:"environment" yaml:"environment"`

	// API is the configuration for the HTTP server hosting the UI and the JSON API.
	API struct {
		// TLS is the configuration for TLS.
		TLS struct {
			// Enabled is whether TLS is enabled for the server.
			Enabled bool `json:"enabled" yaml:"enabled"`
			// CertPath is the path to the TLS certificate.
			CertPath string `json:"certpath" yaml:"certpath"`
			// KeyPath is the path to the TLS key.
			KeyPath string `json:"keypath" yaml:"keypath"`
		} `json:"tls"`
		// Port is the port that the server will listen on.
		Port int `json:"port" yaml:"port"`
		// Host is the address the server binds to.
		Host string `json:"host" yaml:"host"`
	} `json:"api" yaml:"api"`

	// Logging is the configuration for the logger.
	Logging struct {
		// Level is the logging level.
		Level  string `json:"level"`
		Format string `json:"format"`
	} `json:"logging" yaml:"logging"`

	// Dataset is the configuration for the dataset loaded at startup.
	Dataset struct {
		// Path is the path to the CSV file to load.
		Path string `json:"path" yaml:"path"`
		// CategoricalMaxDistinct is the largest number of distinct values a
		// non-numeric column may have and still be inferred as categorical
		// rather than free text.
		CategoricalMaxDistinct int `json:"categoricalMaxDistinct" yaml:"categoricalMaxDistinct" mapstructure:"categoricalMaxDistinct"`
	} `json:"dataset" yaml:"dataset"`
}

// State is the global configuration state for plotdeck.
var State Config

func Init() {
	// a .env file in the working directory is a convenience for local
	// development; absence is not an error.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("/etc/plotdeck/")
	viper.AddConfigPath("$HOME/.plotdeck")
	viper.AddConfigPath(".")

	if configPath, exists := os.LookupEnv("PLOTDECK_CONFIG_PATH"); exists {
		// If the PLOTDECK_CONFIG_PATH environment variable is set, add it as a config path.
		viper.AddConfigPath(configPath)
	}

	viper.SetEnvPrefix("plotdeck")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("API.TLS.Enabled", false)
	viper.SetDefault("API.Port", 8050)
	viper.SetDefault("API.Host", "127.0.0.1")
	viper.SetDefault("Environment", "production")

	viper.SetDefault("Dataset.Path", "pitching_advanced_20IPmin.csv")
	viper.SetDefault("Dataset.CategoricalMaxDistinct", 50)

	viper.SetDefault("Logging.Level", "info")
	viper.SetDefault("Logging.Format", "json")

	err := viper.ReadInConfig()
	if err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			zap.L().Error("error reading config", zap.Error(err))
			return
		} else if err != nil {
			zap.L().Info("config file not found, using defaults")
		}
	}
	viper.AutomaticEnv()

	if err := viper.Unmarshal(&State); err != nil {
		zap.L().Error("error unmarshalling config", zap.Error(err))
	}
	InitLogger(State.Logging.Level, State.Logging.Format,
		zap.Any("build_metadata", map[string]string{
			"version":    Version,
			"build_time": BuildTime,
			"commit":     Commit,
		}))
}

// WriteConfig writes the effective configuration (file values merged with
// environment overrides and defaults) to w as YAML.
func WriteConfig(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(State)
}
