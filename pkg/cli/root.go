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

// Package cli implements petstorectl, an operator tool for inspecting a pet
// store and removing fixtures left behind by failed acceptance runs.
package cli

import (
	"context"
	"flag"
	"time"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/nscaledev/petstore-acceptance/pkg/client"
	"github.com/nscaledev/petstore-acceptance/pkg/constants"

	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

// options are shared by all commands.
type options struct {
	baseURL string
	timeout time.Duration
	zap     zap.Options

	// client is created before any command runs.
	client *client.Client
}

// NewRootCommand returns the petstorectl command tree.
func NewRootCommand() *cobra.Command {
	o := &options{}

	cmd := &cobra.Command{
		Use:               "petstorectl",
		Short:             "Inspect and clean up a pet store",
		Version:           constants.VersionString(),
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger := zap.New(zap.UseFlagOptions(&o.zap), zap.WriteTo(cmd.ErrOrStderr()))

			c, err := client.New(&client.Options{
				BaseURL:       o.baseURL,
				SocketTimeout: o.timeout,
				Filters:       []client.Filter{logFilter(logger)},
			})
			if err != nil {
				return err
			}

			o.client = c

			cmd.SetContext(log.IntoContext(cmd.Context(), logger))

			return nil
		},
	}

	goFlags := flag.NewFlagSet("zap", flag.ContinueOnError)
	o.zap.BindFlags(goFlags)

	cmd.PersistentFlags().AddGoFlagSet(goFlags)
	cmd.PersistentFlags().StringVar(&o.baseURL, "base-url", constants.DefaultBaseURL, "Base URL of the pet store API")
	cmd.PersistentFlags().DurationVar(&o.timeout, "timeout", client.DefaultSocketTimeout, "Time to wait for each response")

	cmd.AddCommand(newCleanupCommand(o))
	cmd.AddCommand(newInventoryCommand(o))
	cmd.AddCommand(newPetsCommand(o))

	return cmd
}

// Execute runs petstorectl with the process arguments.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// logFilter logs every exchange at debug level.
func logFilter(logger logr.Logger) client.Filter {
	return client.FilterFunc(func(exchange *client.Exchange) {
		values := []any{
			"method", exchange.Request.Method,
			"url", exchange.Request.URL.String(),
			"duration", exchange.Duration,
			"traceparent", exchange.TraceParent,
		}

		if exchange.Err != nil {
			logger.Error(exchange.Err, "request failed", values...)
			return
		}

		logger.V(1).Info("request complete", append(values, "status", exchange.Response.StatusCode)...)
	})
}
