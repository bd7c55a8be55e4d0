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

package handler

import (
	"time"

	"github.com/spf13/pflag"
)

// Options control behaviour of the handlers that the public service hard codes.
type Options struct {
	// SessionLifetime is advertised in the X-Expires-After login header.
	SessionLifetime time.Duration

	// CallsPerHour is advertised in the X-Rate-Limit login header.
	CallsPerHour int

	// FirstID is where ID allocation starts for entities posted without one.
	FirstID int64
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.DurationVar(&o.SessionLifetime, "session-lifetime", time.Hour, "Lifetime advertised for login sessions")
	f.IntVar(&o.CallsPerHour, "session-rate-limit", 5000, "Calls per hour advertised for login sessions")
	f.Int64Var(&o.FirstID, "first-id", 9223372000000000000, "First ID allocated to entities created without one")
}

// DefaultOptions matches the flag defaults, for embedding without a command line.
func DefaultOptions() *Options {
	return &Options{
		SessionLifetime: time.Hour,
		CallsPerHour:    5000,
		FirstID:         9223372000000000000,
	}
}
