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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"context"
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	apiclient "github.com/nscaledev/petstore-acceptance/pkg/client"
	"github.com/nscaledev/petstore-acceptance/pkg/fixtures"
	"github.com/nscaledev/petstore-acceptance/pkg/openapi"
	"github.com/nscaledev/petstore-acceptance/test/api"
)

var _ = Describe("Store Management", func() {
	Context("When managing an order through its lifecycle", Ordered, func() {
		var shipDate time.Time

		BeforeAll(func() {
			shipDate = time.Now()

			api.DeleteOrderIfExists(client, ctx, fixtures.OrderID)

			DeferCleanup(func(ctx context.Context) {
				api.DeleteOrderIfExists(client, ctx, fixtures.OrderID)
			})
		})

		expectOrder := func(response *apiclient.Response) {
			order, err := api.Decode[openapi.Order](response)
			Expect(err).NotTo(HaveOccurred())
			Expect(order).To(HaveField("Id", HaveValue(Equal(fixtures.OrderID))))
			Expect(order).To(HaveField("PetId", HaveValue(Equal(fixtures.OrderPetID))))
			Expect(order).To(HaveField("Quantity", HaveValue(BeEquivalentTo(1))))
			Expect(order).To(HaveField("Status", HaveValue(Equal(openapi.OrderStatusPlaced))))
			Expect(order).To(HaveField("Complete", HaveValue(BeTrue())))
		}

		It("should place an order", func() {
			order := api.NewOrderPayload().
				WithID(fixtures.OrderID).
				WithPetID(fixtures.OrderPetID).
				WithQuantity(1).
				WithShipDate(shipDate).
				WithStatus(openapi.OrderStatusPlaced).
				WithComplete(true).
				Build()

			response, err := client.PlaceOrder(ctx, order)
			Expect(err).NotTo(HaveOccurred())
			Expect(response).To(api.HaveStatus(http.StatusOK))

			expectOrder(response)
		})

		It("should get the order by ID", func() {
			response, err := client.GetOrder(ctx, fixtures.OrderID)
			Expect(err).NotTo(HaveOccurred())
			Expect(response).To(api.HaveStatus(http.StatusOK))

			expectOrder(response)
		})

		It("should delete the order", func() {
			response, err := client.DeleteOrder(ctx, fixtures.OrderID)
			Expect(err).NotTo(HaveOccurred())
			Expect(response).To(api.HaveStatus(http.StatusOK))

			api.ExpectGone(ctx, config, func(ctx context.Context) (*apiclient.Response, error) {
				return client.GetOrder(ctx, fixtures.OrderID)
			})
		})
	})

	Context("When reading the inventory", func() {
		It("should return counts by status", func() {
			response, err := client.GetInventory(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(response).To(api.HaveStatus(http.StatusOK))

			inventory, err := api.Decode[openapi.Inventory](response)
			Expect(err).NotTo(HaveOccurred())
			Expect(*inventory).NotTo(BeEmpty())
		})

		It("should be a JSON object", func() {
			response, err := client.GetInventory(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(response).To(api.HaveStatus(http.StatusOK))
			Expect(response).To(api.HaveJSONObjectBody())
		})
	})

	Context("When an order does not exist", func() {
		It("should reject a non-numeric order ID", func() {
			response, err := client.GetOrder(ctx, "invalid")
			Expect(err).NotTo(HaveOccurred())
			Expect(response).To(api.HaveStatus(http.StatusNotFound))
			Expect(response).To(api.HaveAPIMessage(ContainSubstring("input string")))
		})

		It("should return not found", func() {
			response, err := client.GetOrder(ctx, fixtures.MissingOrderID)
			Expect(err).NotTo(HaveOccurred())
			Expect(response).To(api.HaveStatus(http.StatusNotFound))
			Expect(response).To(api.HaveAPIMessage(Equal("Order not found")))
		})
	})

	Context("When placing a malformed order", func() {
		It("should reject the request", func() {
			response, err := client.PlaceOrder(ctx, `{"id":"invalid","petId":"invalid"}`)
			Expect(err).NotTo(HaveOccurred())
			Expect(response).To(api.HaveStatus(http.StatusBadRequest, http.StatusInternalServerError))
		})
	})

	// The service does not validate orders, these document what it accepts.
	Context("When placing an order with missing or invalid fields", func() {
		It("should accept an order with only an ID", func() {
			DeferCleanup(func(ctx context.Context) {
				api.DeleteOrderIfExists(client, ctx, fixtures.IncompleteOrderID)
			})

			response, err := client.PlaceOrder(ctx, api.NewIncompleteOrderPayload(fixtures.IncompleteOrderID).Build())
			Expect(err).NotTo(HaveOccurred())
			Expect(response).To(api.HaveStatus(http.StatusOK))
		})

		It("should accept a negative quantity", func() {
			order := api.CreateOrderWithCleanup(client, ctx, api.NewOrderPayload().
				WithID(fixtures.NegativeQuantityOrderID).
				WithQuantity(-1).
				Build())

			Expect(order).To(HaveField("Quantity", HaveValue(BeEquivalentTo(-1))))
		})
	})
})
