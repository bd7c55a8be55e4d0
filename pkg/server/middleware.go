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
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-logr/logr"
	"golang.org/x/time/rate"

	"github.com/nscaledev/petstore-acceptance/pkg/server/handler"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// Logger attaches a request scoped logger to the context and logs each
// request once it completes.  Must be installed after middleware.RequestID.
func Logger(base logr.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			logger := base.WithValues("requestID", middleware.GetReqID(r.Context()), "method", r.Method, "path", r.URL.Path)

			if traceParent := r.Header.Get("traceparent"); traceParent != "" {
				logger = logger.WithValues("traceparent", traceParent)
			}

			writer := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(writer, r.WithContext(log.IntoContext(r.Context(), logger)))

			logger.V(1).Info("request served", "status", writer.Status(), "bytes", writer.BytesWritten(), "duration", time.Since(start))
		})
	}
}

// RateLimit limits requests per second across all clients.  A non-positive
// limit disables the middleware.
func RateLimit(requestsPerSecond float64, burst int) func(http.Handler) http.Handler {
	if requestsPerSecond <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	limiter := rate.NewLimiter(rate.Limit(requestsPerSecond), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				log.FromContext(r.Context()).Info("rate limit exceeded", "remoteAddr", r.RemoteAddr)

				handler.TooManyRequests(w, r)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
