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
	"net/http"
	"time"
)

// Exchange is a single request and its outcome, exactly one of Response
// and Err is set.
type Exchange struct {
	Request     *http.Request
	RequestBody []byte
	Response    *Response
	Duration    time.Duration
	TraceParent string
	Err         error
}

// Filter observes exchanges for diagnostics and reporting.  Filters cannot
// alter or fail a request.
type Filter interface {
	Filter(exchange *Exchange)
}

// FilterFunc adapts a function to a Filter.
type FilterFunc func(exchange *Exchange)

func (f FilterFunc) Filter(exchange *Exchange) {
	f(exchange)
}

func (c *Client) filter(exchange *Exchange) {
	for _, f := range c.filters {
		f.Filter(exchange)
	}
}
