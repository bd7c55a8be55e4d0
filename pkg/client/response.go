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

package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/nscaledev/petstore-acceptance/pkg/openapi"
)

var ErrEmptyBody = errors.New("response body is empty")

// Response is a fully read HTTP response.
type Response struct {
	StatusCode  int
	Header      http.Header
	Body        []byte
	Duration    time.Duration
	TraceParent string

	// Request is the request that was sent, its body has been consumed.
	Request *http.Request
}

// TraceID returns the W3C trace ID the request was sent with.
func (r *Response) TraceID() string {
	return extractTraceID(r.TraceParent)
}

// DecodeJSON unmarshals the body into v.
func (r *Response) DecodeJSON(v any) error {
	if len(r.Body) == 0 {
		return ErrEmptyBody
	}

	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("unmarshaling response body: %w", err)
	}

	return nil
}

// APIResponse decodes the generic acknowledgement envelope.
func (r *Response) APIResponse() (*openapi.ApiResponse, error) {
	var result openapi.ApiResponse
	if err := r.DecodeJSON(&result); err != nil {
		return nil, err
	}

	return &result, nil
}

// ExpectStatus returns a *StatusError unless the status is one of codes.
func (r *Response) ExpectStatus(codes ...int) error {
	if slices.Contains(codes, r.StatusCode) {
		return nil
	}

	err := &StatusError{
		Expected: codes,
		Actual:   r.StatusCode,
		Body:     string(r.Body),
		TraceID:  r.TraceID(),
	}

	if r.Request != nil {
		err.Method = r.Request.Method
		err.Path = r.Request.URL.Path
	}

	return err
}

// StatusError is returned when a response status was not expected.
type StatusError struct {
	Method   string
	Path     string
	Expected []int
	Actual   int
	Body     string
	TraceID  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status code: expected %v, got %d, body: %s (trace ID: %s)", e.Method, e.Path, e.Expected, e.Actual, e.Body, e.TraceID)
}

// IsStatus reports whether err is a StatusError carrying the given status.
func IsStatus(err error, code int) bool {
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		return false
	}

	return statusErr.Actual == code
}
