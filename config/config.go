// Copyright 2025 The bio2parquet Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config aggregates configuration for the application.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds settings sourced from the environment. Command-line flags
// override anything here.
type Config struct {
	Hub HubConfig `mapstructure:"hub"`
}

// HubConfig configures the Hugging Face Hub publisher.
type HubConfig struct {
	// Endpoint is the Hub base URL; tests point it at a local server.
	Endpoint string `mapstructure:"endpoint"`
	// Token is the write credential. HF_TOKEN is honored for compatibility
	// with the rest of the Hugging Face tooling.
	Token string `mapstructure:"token"`
}

// Load reads configuration from environment variables. Keys use the prefix
// "BIO2PARQUET" with dots replaced by underscores, so "hub.endpoint" becomes
// "BIO2PARQUET_HUB_ENDPOINT".
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("BIO2PARQUET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("hub.endpoint", "https://huggingface.co")
	if err := v.BindEnv("hub.token", "BIO2PARQUET_HUB_TOKEN", "HF_TOKEN"); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
