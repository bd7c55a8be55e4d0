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
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

var ErrInvalidConfig = errors.New("invalid test configuration")

type TestConfig struct {
	BaseURL        string        `env:"API_BASE_URL,default=https://petstore.swagger.io/v2"`
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT,default=10s"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT,default=10s"`

	// Deletes are eventually consistent on the public service, reads are
	// polled with exponential backoff until they agree or SettleTimeout passes.
	SettleTimeout         time.Duration `env:"SETTLE_TIMEOUT,default=30s"`
	SettleInitialInterval time.Duration `env:"SETTLE_INITIAL_INTERVAL,default=250ms"`
	SettleMaxInterval     time.Duration `env:"SETTLE_MAX_INTERVAL,default=4s"`

	// UseLocalServer runs the suites against an in-process fake instead of BaseURL.
	UseLocalServer    bool   `env:"USE_LOCAL_SERVER,default=false"`
	ValidateResponses bool   `env:"VALIDATE_RESPONSES,default=false"`
	SkipIntegration   bool   `env:"SKIP_INTEGRATION,default=false"`
	DebugLogging      bool   `env:"DEBUG_LOGGING,default=false"`
	LogRequests       bool   `env:"LOG_REQUESTS,default=false"`
	LogResponses      bool   `env:"LOG_RESPONSES,default=false"`
	ReportExchanges   bool   `env:"REPORT_EXCHANGES,default=false"`
	JUnitReport       string `env:"JUNIT_REPORT"`
}

// LoadTestConfig loads configuration from environment variables and .env files.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	es, err := env.EnvironToEnvSet(os.Environ())
	if err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	return ParseTestConfig(es)
}

// ParseTestConfig builds configuration from a set of variables, unset
// variables take their defaults.
func ParseTestConfig(es env.EnvSet) (*TestConfig, error) {
	config := &TestConfig{}

	if err := env.Unmarshal(es, config); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := validate(config); err != nil {
		return nil, err
	}

	return config, nil
}

func loadEnvFile() {
	envPaths := []string{
		"../../.env",    // From test/api/suites directory
		"../../../.env", // From test/contracts/consumer/* directories
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
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

func validate(config *TestConfig) error {
	if !config.UseLocalServer {
		u, err := url.ParseRequestURI(config.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("%w: API_BASE_URL %q is not an http(s) URL", ErrInvalidConfig, config.BaseURL)
		}
	}

	positive := map[string]time.Duration{
		"CONNECT_TIMEOUT":         config.ConnectTimeout,
		"REQUEST_TIMEOUT":         config.RequestTimeout,
		"SETTLE_TIMEOUT":          config.SettleTimeout,
		"SETTLE_INITIAL_INTERVAL": config.SettleInitialInterval,
		"SETTLE_MAX_INTERVAL":     config.SettleMaxInterval,
	}

	for name, value := range positive {
		if value <= 0 {
			return fmt.Errorf("%w: %s must be positive", ErrInvalidConfig, name)
		}
	}

	if config.SettleMaxInterval < config.SettleInitialInterval {
		return fmt.Errorf("%w: SETTLE_MAX_INTERVAL must not be less than SETTLE_INITIAL_INTERVAL", ErrInvalidConfig)
	}

	return nil
}
