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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"time"
)

var (
	ErrUnresolvedPathParam = errors.New("unresolved path parameter")
	ErrBodyConflict        = errors.New("request cannot carry both a body and form parameters")
)

// pathParamRegex matches templated path segments e.g. {petId}.
var pathParamRegex = regexp.MustCompile(`\{([^{}/]+)\}`)

// Request accumulates everything needed to send a single request.  Setters
// return the request so they can be chained.
type Request struct {
	client     *Client
	header     http.Header
	pathParams map[string]string
	query      url.Values
	form       url.Values
	body       []byte
	hasBody    bool
	err        error
}

func newRequest(c *Client) *Request {
	return &Request{
		client:     c,
		header:     http.Header{},
		pathParams: map[string]string{},
		query:      url.Values{},
		form:       url.Values{},
	}
}

// ContentType overrides the content type.
func (r *Request) ContentType(mediaType string) *Request {
	r.header.Set("Content-Type", mediaType)

	return r
}

// Accept overrides the accepted media type.
func (r *Request) Accept(mediaType string) *Request {
	r.header.Set("Accept", mediaType)

	return r
}

// Header sets an arbitrary header.
func (r *Request) Header(name, value string) *Request {
	r.header.Set(name, value)

	return r
}

// PathParam binds a value to a {name} path template segment.
func (r *Request) PathParam(name string, value any) *Request {
	r.pathParams[name] = fmt.Sprint(value)

	return r
}

// QueryParam adds query parameter values, repeated for multiple values.
func (r *Request) QueryParam(name string, values ...any) *Request {
	for _, value := range values {
		r.query.Add(name, fmt.Sprint(value))
	}

	return r
}

// FormParam adds a form encoded body parameter.
func (r *Request) FormParam(name string, value any) *Request {
	r.form.Add(name, fmt.Sprint(value))

	return r
}

// Body sets the request body.  Strings and byte slices are sent verbatim so
// that malformed payloads can be sent, anything else is encoded as JSON.
func (r *Request) Body(body any) *Request {
	r.hasBody = true

	switch t := body.(type) {
	case string:
		r.body = []byte(t)
	case []byte:
		r.body = t
	default:
		data, err := json.Marshal(body)
		if err != nil {
			r.err = fmt.Errorf("marshaling request body: %w", err)
			return r
		}

		r.body = data
	}

	return r
}

// Get sends the request with the GET method.
func (r *Request) Get(ctx context.Context, path string) (*Response, error) {
	return r.Do(ctx, http.MethodGet, path)
}

// Post sends the request with the POST method.
func (r *Request) Post(ctx context.Context, path string) (*Response, error) {
	return r.Do(ctx, http.MethodPost, path)
}

// Put sends the request with the PUT method.
func (r *Request) Put(ctx context.Context, path string) (*Response, error) {
	return r.Do(ctx, http.MethodPut, path)
}

// Delete sends the request with the DELETE method.
func (r *Request) Delete(ctx context.Context, path string) (*Response, error) {
	return r.Do(ctx, http.MethodDelete, path)
}

// Do expands the path template, sends the request and reads the whole
// response.  Any status code is a successful exchange, it's up to the caller
// to decide what it expected.
func (r *Request) Do(ctx context.Context, method, path string) (*Response, error) {
	if r.err != nil {
		return nil, r.err
	}

	req, body, err := r.build(ctx, method, path)
	if err != nil {
		return nil, err
	}

	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)

	start := time.Now()
	resp, err := r.client.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		r.client.filter(&Exchange{
			Request:     req,
			RequestBody: body,
			Duration:    duration,
			TraceParent: traceParent,
			Err:         err,
		})

		return nil, fmt.Errorf("%s %s: http request failed: %w", method, req.URL.Path, err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		r.client.filter(&Exchange{
			Request:     req,
			RequestBody: body,
			Duration:    duration,
			TraceParent: traceParent,
			Err:         err,
		})

		return nil, fmt.Errorf("%s %s: reading response body: %w", method, req.URL.Path, err)
	}

	response := &Response{
		StatusCode:  resp.StatusCode,
		Header:      resp.Header,
		Body:        respBody,
		Duration:    time.Since(start),
		TraceParent: traceParent,
		Request:     req,
	}

	r.client.filter(&Exchange{
		Request:     req,
		RequestBody: body,
		Response:    response,
		Duration:    response.Duration,
		TraceParent: traceParent,
	})

	return response, nil
}

func (r *Request) build(ctx context.Context, method, path string) (*http.Request, []byte, error) {
	expanded, err := expandPath(path, r.pathParams)
	if err != nil {
		return nil, nil, err
	}

	base := r.client.baseURL

	u, err := url.Parse(base.Scheme + "://" + base.Host + base.EscapedPath() + expanded)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing request URL: %w", err)
	}

	u.RawQuery = r.query.Encode()

	header := r.header.Clone()

	var body []byte

	switch {
	case len(r.form) > 0 && r.hasBody:
		return nil, nil, ErrBodyConflict
	case len(r.form) > 0:
		body = []byte(r.form.Encode())

		if header.Get("Content-Type") == "" {
			header.Set("Content-Type", MediaTypeForm)
		}
	case r.hasBody:
		body = r.body
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header = header

	return req, body, nil
}

// expandPath replaces every {name} in the template with the escaped value.
func expandPath(template string, params map[string]string) (string, error) {
	var missing []string

	expanded := pathParamRegex.ReplaceAllStringFunc(template, func(match string) string {
		name := match[1 : len(match)-1]

		value, ok := params[name]
		if !ok {
			missing = append(missing, name)
			return match
		}

		return url.PathEscape(value)
	})

	if len(missing) > 0 {
		return "", fmt.Errorf("%w: %v in %s", ErrUnresolvedPathParam, missing, template)
	}

	return expanded, nil
}
