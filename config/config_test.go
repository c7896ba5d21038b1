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

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("BIO2PARQUET_HUB_ENDPOINT", "")
	t.Setenv("BIO2PARQUET_HUB_TOKEN", "")
	t.Setenv("HF_TOKEN", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://huggingface.co", cfg.Hub.Endpoint)
	assert.Empty(t, cfg.Hub.Token)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BIO2PARQUET_HUB_ENDPOINT", "http://localhost:8080")
	t.Setenv("BIO2PARQUET_HUB_TOKEN", "from-prefixed-env")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.Hub.Endpoint)
	assert.Equal(t, "from-prefixed-env", cfg.Hub.Token)
}

func TestLoad_HFTokenFallback(t *testing.T) {
	t.Setenv("BIO2PARQUET_HUB_TOKEN", "")
	t.Setenv("HF_TOKEN", "hf-token-value")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "hf-token-value", cfg.Hub.Token)
}
