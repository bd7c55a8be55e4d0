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

package server

import (
	"time"

	"github.com/spf13/pflag"

	"github.com/nscaledev/petstore-acceptance/pkg/constants"
	"github.com/nscaledev/petstore-acceptance/pkg/server/handler"
)

// Options allow the fake pet store to be configured on the CLI.
type Options struct {
	// ListenAddress is where the HTTP server binds.
	ListenAddress string

	// BasePath is the prefix all API routes are served under.
	BasePath string

	// DatabaseURL selects the postgres store, the memory store is used
	// when empty.
	DatabaseURL string

	// Seed populates a few pets, an order and a user on start.
	Seed bool

	// RateLimit is requests per second across all clients, zero disables it.
	RateLimit float64

	// RateLimitBurst is the token bucket size.
	RateLimitBurst int

	// MaxBodySize limits request bodies.
	MaxBodySize int64

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	// Handler options are passed through to the API handlers.
	Handler handler.Options
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.ListenAddress, "listen-address", ":8080", "Address the HTTP server listens on")
	f.StringVar(&o.BasePath, "base-path", constants.DefaultBasePath, "Path prefix of all API routes")
	f.StringVar(&o.DatabaseURL, "database-url", "", "PostgreSQL connection string, an in-memory store is used if unset")
	f.BoolVar(&o.Seed, "seed", false, "Populate the store with sample data on start")
	f.Float64Var(&o.RateLimit, "rate-limit", 0, "Requests per second allowed across all clients, 0 disables limiting")
	f.IntVar(&o.RateLimitBurst, "rate-limit-burst", 50, "Requests allowed in a burst")
	f.Int64Var(&o.MaxBodySize, "max-body-size", 1<<20, "Maximum request body size in bytes")
	f.DurationVar(&o.ReadTimeout, "read-timeout", 10*time.Second, "HTTP server read timeout")
	f.DurationVar(&o.WriteTimeout, "write-timeout", 10*time.Second, "HTTP server write timeout")
	f.DurationVar(&o.IdleTimeout, "idle-timeout", time.Minute, "HTTP server idle connection timeout")
	f.DurationVar(&o.ShutdownTimeout, "shutdown-timeout", 10*time.Second, "Time allowed for in flight requests on shutdown")

	o.Handler.AddFlags(f)
}

// DefaultOptions matches the flag defaults.
func DefaultOptions() *Options {
	return &Options{
		ListenAddress:   ":8080",
		BasePath:        constants.DefaultBasePath,
		RateLimitBurst:  50,
		MaxBodySize:     1 << 20,
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    10 * time.Second,
		IdleTimeout:     time.Minute,
		ShutdownTimeout: 10 * time.Second,
		Handler:         *handler.DefaultOptions(),
	}
}
