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

package openapi

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
)

//go:generate go tool oapi-codegen -generate types -package openapi -o types.go petstore.yaml
//go:generate go tool oapi-codegen -generate chi-server -package openapi -o router.go petstore.yaml

//go:embed petstore.yaml
var schema []byte

// Schema returns the raw OpenAPI description.
func Schema() []byte {
	return schema
}

// LoadSchema parses and validates the embedded OpenAPI description.
func LoadSchema(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(schema)
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validating schema: %w", err)
	}

	return doc, nil
}

// Validator checks responses against the embedded OpenAPI description.
type Validator struct {
	router routers.Router

	// basePath is stripped from request paths before routing e.g. "/v2".
	basePath string
}

// NewValidator creates a response validator for an API served under basePath.
func NewValidator(ctx context.Context, basePath string) (*Validator, error) {
	doc, err := LoadSchema(ctx)
	if err != nil {
		return nil, err
	}

	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("creating schema router: %w", err)
	}

	return &Validator{
		router:   router,
		basePath: strings.TrimSuffix(basePath, "/"),
	}, nil
}

// ValidateResponse checks a response body and content type against the
// operation the request was routed to.  Request bodies are not checked as
// the suites deliberately send malformed ones.
func (v *Validator) ValidateResponse(ctx context.Context, req *http.Request, status int, header http.Header, body []byte) error {
	routed := req.Clone(ctx)

	u := *req.URL
	u.Path = strings.TrimPrefix(u.Path, v.basePath)
	u.RawPath = ""
	routed.URL = &u

	route, pathParams, err := v.router.FindRoute(routed)
	if err != nil {
		return fmt.Errorf("routing %s %s: %w", req.Method, u.Path, err)
	}

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request:    routed,
			PathParams: pathParams,
			Route:      route,
			Options: &openapi3filter.Options{
				ExcludeRequestBody: true,
			},
		},
		Status: status,
		Header: header,
		Body:   io.NopCloser(bytes.NewReader(body)),
	}

	if err := openapi3filter.ValidateResponse(ctx, input); err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, u.Path, err)
	}

	return nil
}
