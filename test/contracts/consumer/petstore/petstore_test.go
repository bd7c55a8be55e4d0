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

package petstore_test

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"testing"

	. "github.com/onsi/ginkgo/v2" //nolint:revive
	. "github.com/onsi/gomega"    //nolint:revive
	"github.com/pact-foundation/pact-go/v2/consumer"
	"github.com/pact-foundation/pact-go/v2/matchers"
	"github.com/pact-foundation/pact-go/v2/models"

	"github.com/nscaledev/petstore-acceptance/pkg/client"
	"github.com/nscaledev/petstore-acceptance/pkg/fixtures"
	"github.com/nscaledev/petstore-acceptance/pkg/openapi"

	"k8s.io/utils/ptr"
)

const basePath = "/v2"

var testingT *testing.T //nolint:gochecknoglobals

func TestContracts(t *testing.T) { //nolint:paralleltest
	testingT = t

	RegisterFailHandler(Fail)
	RunSpecs(t, "Pet Store Consumer Contract Suite")
}

// createClient creates a pet store client for the mock server.
func createClient(config consumer.MockServerConfig) (*client.Client, error) {
	host := net.JoinHostPort(config.Host, strconv.Itoa(config.Port))

	return client.New(&client.Options{
		BaseURL: fmt.Sprintf("http://%s%s", host, basePath),
	})
}

func petBody() map[string]any {
	return map[string]any{
		"id":   matchers.Like(fixtures.PetID),
		"name": matchers.String(fixtures.PetName),
		"category": map[string]any{
			"id":   matchers.Like(1),
			"name": matchers.String("Dogs"),
		},
		"photoUrls": matchers.EachLike(matchers.String("https://example.com/photo1.jpg"), 1),
		"status":    matchers.Regex("available", "^(available|pending|sold)$"),
	}
}

var _ = Describe("Pet Store Service Contract", func() {
	var (
		pact *consumer.V4HTTPMockProvider
		ctx  context.Context
	)

	BeforeEach(func() {
		var err error
		pact, err = consumer.NewV4Pact(consumer.MockHTTPProviderConfig{
			Consumer: "petstore-acceptance",
			Provider: "petstore",
			PactDir:  "../pacts",
		})
		Expect(err).NotTo(HaveOccurred())
		ctx = context.Background()
	})

	Describe("AddPet", func() {
		It("returns the created pet", func() {
			pact.AddInteraction().
				UponReceiving("a request to add a pet").
				WithRequest("POST", basePath+"/pet", func(b *consumer.V4RequestBuilder) {
					b.JSONBody(petBody())
				}).
				WillRespondWith(200, func(b *consumer.V4ResponseBuilder) {
					b.JSONBody(petBody())
				})

			test := func(config consumer.MockServerConfig) error {
				c, err := createClient(config)
				if err != nil {
					return fmt.Errorf("creating client: %w", err)
				}

				pet := &openapi.Pet{
					Id:   ptr.To(fixtures.PetID),
					Name: fixtures.PetName,
					Category: &openapi.Category{
						Id:   ptr.To[int64](1),
						Name: ptr.To("Dogs"),
					},
					PhotoUrls: []string{"https://example.com/photo1.jpg"},
					Status:    ptr.To(openapi.PetStatusAvailable),
				}

				response, err := c.Given().Body(pet).Post(ctx, "/pet")
				if err != nil {
					return fmt.Errorf("adding pet: %w", err)
				}

				if err := response.ExpectStatus(http.StatusOK); err != nil {
					return err
				}

				var created openapi.Pet
				if err := response.DecodeJSON(&created); err != nil {
					return err
				}

				Expect(created.Id).To(HaveValue(Equal(fixtures.PetID)))
				Expect(created.Name).To(Equal(fixtures.PetName))

				return nil
			}

			Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
		})
	})

	Describe("GetPetById", func() {
		Context("when the pet exists", func() {
			It("returns the pet", func() {
				pact.AddInteraction().
					GivenWithParameter(models.ProviderState{
						Name: "a pet exists",
						Parameters: map[string]any{
							"petId": fixtures.PetID,
						},
					}).
					UponReceiving("a request for an existing pet").
					WithRequest("GET", fmt.Sprintf("%s/pet/%d", basePath, fixtures.PetID)).
					WillRespondWith(200, func(b *consumer.V4ResponseBuilder) {
						b.JSONBody(petBody())
					})

				test := func(config consumer.MockServerConfig) error {
					c, err := createClient(config)
					if err != nil {
						return fmt.Errorf("creating client: %w", err)
					}

					response, err := c.Given().PathParam("petId", fixtures.PetID).Get(ctx, "/pet/{petId}")
					if err != nil {
						return fmt.Errorf("getting pet: %w", err)
					}

					if err := response.ExpectStatus(http.StatusOK); err != nil {
						return err
					}

					var pet openapi.Pet
					if err := response.DecodeJSON(&pet); err != nil {
						return err
					}

					Expect(pet.Id).To(HaveValue(Equal(fixtures.PetID)))
					Expect(pet.Status).To(HaveValue(BeElementOf(openapi.PetStatuses())))

					return nil
				}

				Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
			})
		})

		Context("when the pet does not exist", func() {
			It("returns not found", func() {
				pact.AddInteraction().
					GivenWithParameter(models.ProviderState{
						Name: "a pet does not exist",
						Parameters: map[string]any{
							"petId": fixtures.MissingPetID,
						},
					}).
					UponReceiving("a request for a missing pet").
					WithRequest("GET", fmt.Sprintf("%s/pet/%d", basePath, fixtures.MissingPetID)).
					WillRespondWith(404, func(b *consumer.V4ResponseBuilder) {
						b.JSONBody(map[string]any{
							"code":    matchers.Integer(1),
							"type":    matchers.String("error"),
							"message": matchers.String("Pet not found"),
						})
					})

				test := func(config consumer.MockServerConfig) error {
					c, err := createClient(config)
					if err != nil {
						return fmt.Errorf("creating client: %w", err)
					}

					response, err := c.Given().PathParam("petId", fixtures.MissingPetID).Get(ctx, "/pet/{petId}")
					if err != nil {
						return fmt.Errorf("getting pet: %w", err)
					}

					Expect(response.ExpectStatus(http.StatusOK)).To(Satisfy(func(err error) bool {
						return client.IsStatus(err, http.StatusNotFound)
					}))

					envelope, err := response.APIResponse()
					if err != nil {
						return err
					}

					Expect(envelope.Message).To(HaveValue(Equal("Pet not found")))

					return nil
				}

				Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
			})
		})
	})

	Describe("FindPetsByStatus", func() {
		It("returns pets with the requested status", func() {
			pact.AddInteraction().
				Given("pets are available").
				UponReceiving("a request for available pets").
				WithRequest("GET", basePath+"/pet/findByStatus", func(b *consumer.V4RequestBuilder) {
					b.Query("status", matchers.S("available"))
				}).
				WillRespondWith(200, func(b *consumer.V4ResponseBuilder) {
					b.JSONBody(matchers.EachLike(map[string]any{
						"id":     matchers.Like(fixtures.PetID),
						"name":   matchers.String(fixtures.PetName),
						"status": matchers.String("available"),
					}, 1))
				})

			test := func(config consumer.MockServerConfig) error {
				c, err := createClient(config)
				if err != nil {
					return fmt.Errorf("creating client: %w", err)
				}

				response, err := c.Given().QueryParam("status", openapi.PetStatusAvailable).Get(ctx, "/pet/findByStatus")
				if err != nil {
					return fmt.Errorf("finding pets: %w", err)
				}

				if err := response.ExpectStatus(http.StatusOK); err != nil {
					return err
				}

				var pets openapi.Pets
				if err := response.DecodeJSON(&pets); err != nil {
					return err
				}

				Expect(pets).NotTo(BeEmpty())
				Expect(pets).To(HaveEach(HaveField("Status", HaveValue(Equal(openapi.PetStatusAvailable)))))

				return nil
			}

			Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
		})
	})

	Describe("PlaceOrder", func() {
		It("returns the placed order", func() {
			order := map[string]any{
				"id":       matchers.Like(fixtures.OrderID),
				"petId":    matchers.Like(fixtures.OrderPetID),
				"quantity": matchers.Integer(1),
				"shipDate": matchers.Regex("2026-01-01T00:00:00.000Z", `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z$`),
				"status":   matchers.String("placed"),
				"complete": matchers.Like(true),
			}

			pact.AddInteraction().
				UponReceiving("a request to place an order").
				WithRequest("POST", basePath+"/store/order", func(b *consumer.V4RequestBuilder) {
					b.JSONBody(order)
				}).
				WillRespondWith(200, func(b *consumer.V4ResponseBuilder) {
					b.JSONBody(order)
				})

			test := func(config consumer.MockServerConfig) error {
				c, err := createClient(config)
				if err != nil {
					return fmt.Errorf("creating client: %w", err)
				}

				body := &openapi.Order{
					Id:       ptr.To(fixtures.OrderID),
					PetId:    ptr.To(fixtures.OrderPetID),
					Quantity: ptr.To[int32](1),
					ShipDate: ptr.To("2026-01-01T00:00:00.000Z"),
					Status:   ptr.To(openapi.OrderStatusPlaced),
					Complete: ptr.To(true),
				}

				response, err := c.Given().Body(body).Post(ctx, "/store/order")
				if err != nil {
					return fmt.Errorf("placing order: %w", err)
				}

				if err := response.ExpectStatus(http.StatusOK); err != nil {
					return err
				}

				var placed openapi.Order
				if err := response.DecodeJSON(&placed); err != nil {
					return err
				}

				Expect(placed.Id).To(HaveValue(Equal(fixtures.OrderID)))
				Expect(placed.Status).To(HaveValue(Equal(openapi.OrderStatusPlaced)))

				return nil
			}

			Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
		})
	})

	Describe("GetInventory", func() {
		It("returns counts by status", func() {
			pact.AddInteraction().
				Given("pets are available").
				UponReceiving("a request for the inventory").
				WithRequest("GET", basePath+"/store/inventory").
				WillRespondWith(200, func(b *consumer.V4ResponseBuilder) {
					b.JSONBody(map[string]any{
						"available": matchers.Integer(1),
					})
				})

			test := func(config consumer.MockServerConfig) error {
				c, err := createClient(config)
				if err != nil {
					return fmt.Errorf("creating client: %w", err)
				}

				response, err := c.Given().Get(ctx, "/store/inventory")
				if err != nil {
					return fmt.Errorf("getting inventory: %w", err)
				}

				if err := response.ExpectStatus(http.StatusOK); err != nil {
					return err
				}

				var inventory openapi.Inventory
				if err := response.DecodeJSON(&inventory); err != nil {
					return err
				}

				Expect(inventory).To(HaveKey("available"))

				return nil
			}

			Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
		})
	})

	Describe("LoginUser", func() {
		It("returns a session", func() {
			pact.AddInteraction().
				GivenWithParameter(models.ProviderState{
					Name: "a user exists",
					Parameters: map[string]any{
						"username": fixtures.Username,
						"password": fixtures.Password,
					},
				}).
				UponReceiving("a request to log in").
				WithRequest("GET", basePath+"/user/login", func(b *consumer.V4RequestBuilder) {
					b.Query("username", matchers.S(fixtures.Username))
					b.Query("password", matchers.S(fixtures.Password))
				}).
				WillRespondWith(200, func(b *consumer.V4ResponseBuilder) {
					b.Header("X-Rate-Limit", matchers.Regex("5000", `^\d+$`))
					b.JSONBody(map[string]any{
						"code":    matchers.Integer(200),
						"type":    matchers.String("unknown"),
						"message": matchers.Regex("logged in user session:1", "^logged in user session:.+$"),
					})
				})

			test := func(config consumer.MockServerConfig) error {
				c, err := createClient(config)
				if err != nil {
					return fmt.Errorf("creating client: %w", err)
				}

				response, err := c.Given().
					QueryParam("username", fixtures.Username).
					QueryParam("password", fixtures.Password).
					Get(ctx, "/user/login")
				if err != nil {
					return fmt.Errorf("logging in: %w", err)
				}

				if err := response.ExpectStatus(http.StatusOK); err != nil {
					return err
				}

				envelope, err := response.APIResponse()
				if err != nil {
					return err
				}

				Expect(envelope.Message).To(HaveValue(ContainSubstring("logged in user session")))
				Expect(response.Header.Get("X-Rate-Limit")).NotTo(BeEmpty())

				return nil
			}

			Expect(pact.ExecuteTest(testingT, test)).To(Succeed())
		})
	})
})
