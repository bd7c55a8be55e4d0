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
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/nscaledev/petstore-acceptance/pkg/openapi"

	"k8s.io/utils/ptr"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// Envelope types returned by the public service.
const (
	typeUnknown = "unknown"
	typeError   = "error"
)

// codeNotFound is what the service puts in the code field of lookup misses,
// it does not match the HTTP status.
const codeNotFound = 1

// apiResponse builds an ApiResponse envelope.
func apiResponse(code int, kind, message string) *openapi.ApiResponse {
	return &openapi.ApiResponse{
		Code:    ptr.To(int32(code)), //nolint:gosec
		Type:    ptr.To(kind),
		Message: ptr.To(message),
	}
}

// writeJSON serializes the body and writes it with the given status.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		log.FromContext(r.Context()).Error(err, "failed to marshal response")
		w.WriteHeader(http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err := w.Write(data); err != nil {
		log.FromContext(r.Context()).Error(err, "failed to write response")
	}
}

// ok acknowledges a write, the message carries the affected key.
func ok(w http.ResponseWriter, r *http.Request, message string) {
	writeJSON(w, r, http.StatusOK, apiResponse(http.StatusOK, typeUnknown, message))
}

func okID(w http.ResponseWriter, r *http.Request, id int64) {
	ok(w, r, strconv.FormatInt(id, 10))
}

// notFound is the lookup miss envelope, e.g. "Pet not found".
func notFound(w http.ResponseWriter, r *http.Request, message string) {
	writeJSON(w, r, http.StatusNotFound, apiResponse(codeNotFound, typeError, message))
}

// notFoundEmpty is returned by deletes of missing resources, which have no body.
func notFoundEmpty(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
}

// numberFormat is how the service reports a non-numeric path ID.
func numberFormat(w http.ResponseWriter, r *http.Request, value string) {
	message := fmt.Sprintf("java.lang.NumberFormatException: For input string: \"%s\"", value)

	writeJSON(w, r, http.StatusNotFound, apiResponse(http.StatusNotFound, typeUnknown, message))
}

func badRequest(w http.ResponseWriter, r *http.Request, message string) {
	writeJSON(w, r, http.StatusBadRequest, apiResponse(http.StatusBadRequest, typeUnknown, message))
}

func noData(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusMethodNotAllowed, apiResponse(http.StatusMethodNotAllowed, typeUnknown, "no data"))
}

func unsupportedMediaType(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusUnsupportedMediaType, apiResponse(http.StatusUnsupportedMediaType, typeUnknown, "Unsupported Media Type"))
}

// serverError logs the cause and hides it from the client.
func serverError(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		log.FromContext(r.Context()).Error(err, "request failed")
	}

	writeJSON(w, r, http.StatusInternalServerError, apiResponse(http.StatusInternalServerError, typeUnknown, "something bad happened"))
}

// NotFound handles unrouted paths.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusNotFound, apiResponse(http.StatusNotFound, typeUnknown, "HTTP 404 Not Found"))
}

// MethodNotAllowed handles routed paths with an unsupported method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusMethodNotAllowed, apiResponse(http.StatusMethodNotAllowed, typeUnknown, "HTTP 405 Method Not Allowed"))
}

// TooManyRequests is returned when the server wide rate limit is exceeded.
func TooManyRequests(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusTooManyRequests, apiResponse(http.StatusTooManyRequests, typeUnknown, "Too many requests"))
}
