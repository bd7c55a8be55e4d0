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
	"context"
	"errors"
	"fmt"

	"github.com/cenkalti/backoff/v4"

	"github.com/nscaledev/petstore-acceptance/pkg/client"
)

// ErrNotSettled is returned when a resource does not reach the expected
// state before the settle timeout.
var ErrNotSettled = errors.New("resource did not settle")

// Probe reads the state of a resource.
type Probe func(ctx context.Context) (*client.Response, error)

// WaitForStatus polls the probe with exponential backoff until it returns one
// of the expected status codes.  Transport errors end polling immediately,
// only a disagreeing status is retried.  The last response is always
// returned if there was one.
func WaitForStatus(ctx context.Context, config *TestConfig, probe Probe, codes ...int) (*client.Response, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = config.SettleInitialInterval
	policy.MaxInterval = config.SettleMaxInterval
	policy.MaxElapsedTime = config.SettleTimeout

	var (
		last      *client.Response
		attempts  int
		transport bool
	)

	operation := func() error {
		attempts++

		response, err := probe(ctx)
		if err != nil {
			transport = true
			return backoff.Permanent(err)
		}

		last = response

		return response.ExpectStatus(codes...)
	}

	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		if transport {
			return last, err
		}

		return last, fmt.Errorf("%w after %d attempts: %w", ErrNotSettled, attempts, err)
	}

	return last, nil
}
