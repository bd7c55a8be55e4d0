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

// Package api provides acceptance test utilities for the pet store API.
//
// # Typed Client
//
// APIClient has one method per endpoint and is built on the pkg/client
// request builder.  Methods return the raw response whatever its status,
// so suites can assert on error statuses and bodies as readily as on
// success.  Every request carries a W3C traceparent, the trace ID is logged
// on failure so the request can be found in server logs.
//
// # Configuration
//
// TestConfig is read from the environment, after loading test/.env if
// present.  Set USE_LOCAL_SERVER=true to run against an in-process fake pet
// store rather than API_BASE_URL, and VALIDATE_RESPONSES=true to check every
// successful response against the embedded OpenAPI description.
//
// # Eventual Consistency
//
// The public pet store is load balanced, a delete may not be visible to the
// next read.  WaitForStatus polls with exponential backoff rather than
// sleeping for a fixed time.
package api
