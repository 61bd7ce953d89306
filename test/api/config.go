/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/nscaledev/wcg-reservation/pkg/client"
	"github.com/nscaledev/wcg-reservation/pkg/openapi"
)

type TestConfig struct {
	BaseURL          string
	Revision         openapi.Revision
	RequestTimeout   time.Duration
	RequestRetries   uint64
	SkipIntegration  bool
	ValidateContract bool
	LogRequests      bool
	LogResponses     bool

	// ReferenceURLs are filled in by the suite when running offline.
	ReferenceURLs map[openapi.Revision]string
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Nothing is required, an empty configuration runs offline.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	revision, err := openapi.ParseRevision(os.Getenv("API_REVISION"))
	if err != nil {
		return nil, fmt.Errorf("API_REVISION: %w", err)
	}

	config := &TestConfig{
		BaseURL:          os.Getenv("API_BASE_URL"),
		Revision:         revision,
		RequestTimeout:   getDurationWithDefault("REQUEST_TIMEOUT", 30*time.Second),
		RequestRetries:   getUint64WithDefault("REQUEST_RETRIES", 2),
		SkipIntegration:  getBoolWithDefault("SKIP_INTEGRATION", false),
		ValidateContract: getBoolWithDefault("VALIDATE_CONTRACT", true),
		LogRequests:      getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:     getBoolWithDefault("LOG_RESPONSES", false),
		ReferenceURLs:    map[openapi.Revision]string{},
	}

	return config, nil
}

// Offline is true when no remote deployment is configured.
func (c *TestConfig) Offline() bool {
	return c.BaseURL == ""
}

// BaseURLFor returns where requests for a revision should go.
func (c *TestConfig) BaseURLFor(revision openapi.Revision) (string, error) {
	if !c.Offline() {
		if revision != c.Revision {
			return "", fmt.Errorf("%w: remote serves %s, not %s", openapi.ErrInvalidRevision, c.Revision, revision)
		}

		return c.BaseURL, nil
	}

	url, ok := c.ReferenceURLs[revision]
	if !ok {
		return "", fmt.Errorf("%w: no reference server for %s", openapi.ErrInvalidRevision, revision)
	}

	return url, nil
}

// ClientOptions translates the configuration for pkg/client.
func (c *TestConfig) ClientOptions(baseURL string, revision openapi.Revision) *client.Options {
	options := client.NewOptions()
	options.BaseURL = baseURL
	options.Revision = revision
	options.Timeout = c.RequestTimeout
	options.Retries = c.RequestRetries
	options.ValidateContract = c.ValidateContract
	options.LogRequests = c.LogRequests
	options.LogResponses = c.LogResponses

	return options
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func getUint64WithDefault(key string, defaultValue uint64) uint64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return defaultValue
	}

	return n
}

func loadEnvFile() {
	envPaths := []string{
		"../../.env", // From test/api/suites directory
		"../.env",    // From test/api directory
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// Not an error, CI sets the environment directly.
		return
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}
