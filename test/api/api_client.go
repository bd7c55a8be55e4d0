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

//nolint:revive // naming conventions acceptable in test code
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/onsi/ginkgo/v2"

	"github.com/nscaledev/petstore-acceptance/pkg/client"
	"github.com/nscaledev/petstore-acceptance/pkg/openapi"
)

type APIClient struct {
	client    *client.Client
	config    *TestConfig
	endpoints *Endpoints

	// validator checks successful responses against the schema, nil
	// when validation is disabled.
	validator *openapi.Validator
}

// NewAPIClientWithConfig creates a client for config.BaseURL.
func NewAPIClientWithConfig(ctx context.Context, config *TestConfig) (*APIClient, error) {
	c, err := client.New(&client.Options{
		BaseURL:        config.BaseURL,
		ConnectTimeout: config.ConnectTimeout,
		SocketTimeout:  config.RequestTimeout,
		Filters:        []client.Filter{logFilter(config)},
	})
	if err != nil {
		return nil, err
	}

	if config.ReportExchanges {
		c.AddFilter(reportFilter())
	}

	apiClient := &APIClient{
		client:    c,
		config:    config,
		endpoints: NewEndpoints(),
	}

	if config.ValidateResponses {
		validator, err := openapi.NewValidator(ctx, c.BaseURL().Path)
		if err != nil {
			return nil, err
		}

		apiClient.validator = validator
	}

	return apiClient, nil
}

// Raw returns the underlying request builder, for requests the typed
// methods cannot express.
func (c *APIClient) Raw() *client.Client {
	return c.client
}

// logFilter writes exchanges to the Ginkgo output as configured.  Transport
// failures are always logged along with the trace ID to search for.
func logFilter(config *TestConfig) client.Filter {
	return client.FilterFunc(func(exchange *client.Exchange) {
		method, path := exchange.Request.Method, exchange.Request.URL.Path

		if exchange.Err != nil {
			ginkgo.GinkgoWriter.Printf("[%s %s] ERROR http request failed duration=%s traceparent=%s error=%v\n", method, path, exchange.Duration, exchange.TraceParent, exchange.Err)
			logTraceContext(exchange.TraceParent)

			return
		}

		if config.DebugLogging && len(exchange.RequestBody) > 0 {
			ginkgo.GinkgoWriter.Printf("[%s %s] request body: %s\n", method, path, string(exchange.RequestBody))
		}

		if config.LogRequests {
			ginkgo.GinkgoWriter.Printf("[%s %s] status=%d duration=%s traceparent=%s\n", method, path, exchange.Response.StatusCode, exchange.Duration, exchange.TraceParent)
		}

		if config.LogResponses && len(exchange.Response.Body) > 0 {
			ginkgo.GinkgoWriter.Printf("[%s %s] response body: %s\n", method, path, string(exchange.Response.Body))
		}
	})
}

// logTraceContext logs the trace context information.
func logTraceContext(traceParent string) {
	response := &client.Response{TraceParent: traceParent}

	ginkgo.GinkgoWriter.Printf("TRACE CONTEXT: Use trace ID '%s' to search logs for this request\n", response.TraceID())
}

// validate checks a successful response against the schema when enabled.
func (c *APIClient) validate(ctx context.Context, response *client.Response) error {
	if c.validator == nil || response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil
	}

	if err := c.validator.ValidateResponse(ctx, response.Request, response.StatusCode, response.Header, response.Body); err != nil {
		return fmt.Errorf("response does not match schema (trace ID: %s): %w", response.TraceID(), err)
	}

	return nil
}

// do finishes a request, applying validation.  Any status is returned
// without error, the suites assert on status themselves.
func (c *APIClient) do(ctx context.Context, request *client.Request, method, path, action string) (*client.Response, error) {
	response, err := request.Do(ctx, method, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}

	if err := c.validate(ctx, response); err != nil {
		return response, fmt.Errorf("%s: %w", action, err)
	}

	return response, nil
}

// Decode unmarshals a response body into a new T.
func Decode[T any](response *client.Response) (*T, error) {
	var result T

	if err := response.DecodeJSON(&result); err != nil {
		return nil, err
	}

	return &result, nil
}

// AddPet creates a pet.  The body is normally an *openapi.Pet, but may be a
// string to send malformed or empty payloads.
func (c *APIClient) AddPet(ctx context.Context, body any) (*client.Response, error) {
	return c.do(ctx, c.client.Given().Body(body), http.MethodPost, c.endpoints.Pets(), "adding pet")
}

// UpdatePet replaces a pet.
func (c *APIClient) UpdatePet(ctx context.Context, body any) (*client.Response, error) {
	return c.do(ctx, c.client.Given().Body(body), http.MethodPut, c.endpoints.Pets(), "updating pet")
}

func (c *APIClient) GetPet(ctx context.Context, petID any) (*client.Response, error) {
	request := c.client.Given().PathParam("petId", petID)

	return c.do(ctx, request, http.MethodGet, c.endpoints.Pet(), "getting pet")
}

func (c *APIClient) FindPetsByStatus(ctx context.Context, statuses ...openapi.PetStatus) (*client.Response, error) {
	request := c.client.Given()

	for _, status := range statuses {
		request = request.QueryParam("status", status)
	}

	return c.do(ctx, request, http.MethodGet, c.endpoints.PetsByStatus(), "finding pets")
}

// UpdatePetWithForm updates a pet's name and status from form data.
func (c *APIClient) UpdatePetWithForm(ctx context.Context, petID any, params openapi.UpdatePetWithFormFormdataRequestBody) (*client.Response, error) {
	request := c.client.GivenWithoutContentType().PathParam("petId", petID)

	if params.Name != nil {
		request = request.FormParam("name", *params.Name)
	}

	if params.Status != nil {
		request = request.FormParam("status", *params.Status)
	}

	return c.do(ctx, request, http.MethodPost, c.endpoints.Pet(), "updating pet with form")
}

func (c *APIClient) DeletePet(ctx context.Context, petID any) (*client.Response, error) {
	request := c.client.GivenWithoutContentType().PathParam("petId", petID)

	return c.do(ctx, request, http.MethodDelete, c.endpoints.Pet(), "deleting pet")
}

func (c *APIClient) GetInventory(ctx context.Context) (*client.Response, error) {
	return c.do(ctx, c.client.Given(), http.MethodGet, c.endpoints.Inventory(), "getting inventory")
}

// PlaceOrder creates an order.  The body is normally an *openapi.Order, but
// may be a string to send malformed payloads.
func (c *APIClient) PlaceOrder(ctx context.Context, body any) (*client.Response, error) {
	return c.do(ctx, c.client.Given().Body(body), http.MethodPost, c.endpoints.Orders(), "placing order")
}

// GetOrder takes any order ID so that non-numeric IDs can be tested.
func (c *APIClient) GetOrder(ctx context.Context, orderID any) (*client.Response, error) {
	request := c.client.Given().PathParam("orderId", orderID)

	return c.do(ctx, request, http.MethodGet, c.endpoints.Order(), "getting order")
}

func (c *APIClient) DeleteOrder(ctx context.Context, orderID any) (*client.Response, error) {
	request := c.client.GivenWithoutContentType().PathParam("orderId", orderID)

	return c.do(ctx, request, http.MethodDelete, c.endpoints.Order(), "deleting order")
}

func (c *APIClient) CreateUser(ctx context.Context, user *openapi.User) (*client.Response, error) {
	return c.do(ctx, c.client.Given().Body(user), http.MethodPost, c.endpoints.Users(), "creating user")
}

func (c *APIClient) CreateUsersWithArray(ctx context.Context, users openapi.Users) (*client.Response, error) {
	return c.do(ctx, c.client.Given().Body(users), http.MethodPost, c.endpoints.UsersWithArray(), "creating users with array")
}

func (c *APIClient) CreateUsersWithList(ctx context.Context, users openapi.Users) (*client.Response, error) {
	return c.do(ctx, c.client.Given().Body(users), http.MethodPost, c.endpoints.UsersWithList(), "creating users with list")
}

func (c *APIClient) LoginUser(ctx context.Context, params openapi.LoginUserParams) (*client.Response, error) {
	request := c.client.Given().
		QueryParam("username", params.Username).
		QueryParam("password", params.Password)

	return c.do(ctx, request, http.MethodGet, c.endpoints.Login(), "logging in")
}

func (c *APIClient) LogoutUser(ctx context.Context) (*client.Response, error) {
	return c.do(ctx, c.client.Given(), http.MethodGet, c.endpoints.Logout(), "logging out")
}

func (c *APIClient) GetUser(ctx context.Context, username string) (*client.Response, error) {
	request := c.client.Given().PathParam("username", username)

	return c.do(ctx, request, http.MethodGet, c.endpoints.User(), "getting user")
}

func (c *APIClient) UpdateUser(ctx context.Context, username string, user *openapi.User) (*client.Response, error) {
	request := c.client.Given().PathParam("username", username).Body(user)

	return c.do(ctx, request, http.MethodPut, c.endpoints.User(), "updating user")
}

func (c *APIClient) DeleteUser(ctx context.Context, username string) (*client.Response, error) {
	request := c.client.GivenWithoutContentType().PathParam("username", username)

	return c.do(ctx, request, http.MethodDelete, c.endpoints.User(), "deleting user")
}
