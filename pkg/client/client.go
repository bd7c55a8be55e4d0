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

// Package client is a small declarative HTTP request builder for exercising
// the pet store API.  A Client carries the base URL, timeouts and filters,
// and hands out preconfigured Requests that only need a method, path,
// parameters and a body.
//
// There are no retries.  A transport failure or timeout is returned to the
// caller as is, in a test that is a failure of that test alone.
package client

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultConnectTimeout bounds connection establishment, including TLS.
	DefaultConnectTimeout = 10 * time.Second

	// DefaultSocketTimeout bounds waiting on, and reading, a response.
	DefaultSocketTimeout = 10 * time.Second

	// MediaTypeJSON is the default content type and accept header.
	MediaTypeJSON = "application/json"

	// MediaTypeForm is used for form parameters.
	MediaTypeForm = "application/x-www-form-urlencoded"
)

var ErrInvalidBaseURL = errors.New("invalid base URL")

// Options configures a Client.
type Options struct {
	// BaseURL is prefixed to every request path e.g. https://petstore.swagger.io/v2.
	BaseURL string

	// ConnectTimeout defaults to DefaultConnectTimeout.
	ConnectTimeout time.Duration

	// SocketTimeout defaults to DefaultSocketTimeout.
	SocketTimeout time.Duration

	// Filters observe every exchange in order.
	Filters []Filter

	// Transport overrides the generated transport, timeouts are then the
	// responsibility of the caller.
	Transport http.RoundTripper
}

// Client builds and sends requests against a single base URL.
type Client struct {
	baseURL *url.URL
	client  *http.Client
	filters []Filter
}

// New validates the options and returns a client.
func New(options *Options) (*Client, error) {
	if options == nil {
		options = &Options{}
	}

	baseURL, err := url.ParseRequestURI(options.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidBaseURL, options.BaseURL, err)
	}

	if baseURL.Scheme != "http" && baseURL.Scheme != "https" {
		return nil, fmt.Errorf("%w %q: scheme must be http or https", ErrInvalidBaseURL, options.BaseURL)
	}

	baseURL.Path = strings.TrimSuffix(baseURL.Path, "/")

	connectTimeout := options.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = DefaultConnectTimeout
	}

	socketTimeout := options.SocketTimeout
	if socketTimeout <= 0 {
		socketTimeout = DefaultSocketTimeout
	}

	transport := options.Transport
	if transport == nil {
		transport = newTransport(connectTimeout, socketTimeout)
	}

	c := &Client{
		baseURL: baseURL,
		client: &http.Client{
			Transport: transport,
			// The overall budget is a connection followed by a response.
			Timeout: connectTimeout + socketTimeout,
		},
		filters: options.Filters,
	}

	return c, nil
}

func newTransport(connectTimeout, socketTimeout time.Duration) *http.Transport {
	dialer := &net.Dialer{
		Timeout:   connectTimeout,
		KeepAlive: 30 * time.Second,
	}

	return &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		TLSHandshakeTimeout:   connectTimeout,
		ResponseHeaderTimeout: socketTimeout,
		ExpectContinueTimeout: time.Second,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
	}
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() *url.URL {
	u := *c.baseURL

	return &u
}

// AddFilter appends a filter to those run on every exchange.
func (c *Client) AddFilter(filter Filter) {
	c.filters = append(c.filters, filter)
}

// Given returns a request that sends and accepts JSON.
func (c *Client) Given() *Request {
	return newRequest(c).ContentType(MediaTypeJSON).Accept(MediaTypeJSON)
}

// GivenWithoutContentType returns a request with no content type or accept
// header, for requests with no body, or form bodies.
func (c *Client) GivenWithoutContentType() *Request {
	return newRequest(c)
}
