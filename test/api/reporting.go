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
	"path/filepath"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/ginkgo/v2/reporters"
	"github.com/onsi/ginkgo/v2/types"

	"github.com/nscaledev/petstore-acceptance/pkg/client"
)

// ExchangeReport is attached to the running spec for every exchange.
type ExchangeReport struct {
	Method       string
	URL          string
	RequestBody  string
	Status       int
	ResponseBody string
	Duration     time.Duration
	TraceParent  string
	Error        string
}

// reportFilter attaches every exchange to the Ginkgo report, shown when a
// spec fails or the run is verbose.  Must only be used while a spec runs.
func reportFilter() client.Filter {
	return client.FilterFunc(func(exchange *client.Exchange) {
		report := ExchangeReport{
			Method:      exchange.Request.Method,
			URL:         exchange.Request.URL.String(),
			RequestBody: string(exchange.RequestBody),
			Duration:    exchange.Duration,
			TraceParent: exchange.TraceParent,
		}

		if exchange.Err != nil {
			report.Error = exchange.Err.Error()
		}

		if exchange.Response != nil {
			report.Status = exchange.Response.StatusCode
			report.ResponseBody = string(exchange.Response.Body)
		}

		name := fmt.Sprintf("%s %s", report.Method, exchange.Request.URL.Path)

		ginkgo.AddReportEntry(name, report, types.ReportEntryVisibilityFailureOrVerbose)
	})
}

// WriteJUnitReport writes the suite report in JUnit XML for CI, a no-op
// when path is empty.
func WriteJUnitReport(report ginkgo.Report, path string) error {
	if path == "" {
		return nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving JUnit report path: %w", err)
	}

	if err := reporters.GenerateJUnitReport(report, absPath); err != nil {
		return fmt.Errorf("writing JUnit report: %w", err)
	}

	return nil
}
