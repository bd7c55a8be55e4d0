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

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/nscaledev/petstore-acceptance/pkg/constants"
	"github.com/nscaledev/petstore-acceptance/pkg/server"

	cr "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

func main() {
	var options server.Options

	options.AddFlags(pflag.CommandLine)

	zapOptions := zap.Options{}
	zapOptions.BindFlags(flag.CommandLine)

	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.Parse()

	log.SetLogger(zap.New(zap.UseFlagOptions(&zapOptions)))

	logger := log.Log.WithName("init")
	logger.Info("service starting", "application", constants.Application, "version", constants.Version, "revision", constants.Revision)

	ctx := log.IntoContext(cr.SetupSignalHandler(), log.Log.WithName("server"))

	store, release, err := server.OpenStore(ctx, &options)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	defer release()

	if options.Seed {
		if err := server.Seed(ctx, store); err != nil {
			fmt.Println(err)
			os.Exit(1) //nolint:gocritic
		}
	}

	s, err := server.New(&options, store)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if err := s.Start(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
