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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"context"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nscaledev/petstore-acceptance/test/api"
)

var (
	client *api.APIClient
	ctx    context.Context
	config *api.TestConfig
)

var _ = BeforeSuite(func() {
	var err error

	config, err = api.LoadTestConfig()
	Expect(err).NotTo(HaveOccurred())

	if config.SkipIntegration {
		Skip("SKIP_INTEGRATION is set")
	}

	ctx = context.Background()

	if config.UseLocalServer {
		server, err := api.StartLocalServer(ctx)
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(server.Close)

		config.BaseURL = server.BaseURL()
	}

	GinkgoWriter.Printf("Running against %s\n", config.BaseURL)

	client, err = api.NewAPIClientWithConfig(ctx, config)
	Expect(err).NotTo(HaveOccurred())
})

var _ = ReportAfterSuite("JUnit report", func(report Report) {
	if config == nil {
		return
	}

	Expect(api.WriteJUnitReport(report, config.JUnitReport)).To(Succeed())
})

func TestSuites(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Pet Store API Test Suites")
}
