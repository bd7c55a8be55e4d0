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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nscaledev/petstore-acceptance/pkg/openapi"
)

// CreatePetWithCleanup creates a pet and schedules its deletion.
func CreatePetWithCleanup(client *APIClient, ctx context.Context, pet *openapi.Pet) *openapi.Pet {
	response, err := client.AddPet(ctx, pet)
	Expect(err).NotTo(HaveOccurred())
	Expect(response).To(HaveStatus(http.StatusOK))

	created, err := Decode[openapi.Pet](response)
	Expect(err).NotTo(HaveOccurred())
	Expect(created.Id).NotTo(BeNil())

	GinkgoWriter.Printf("Created pet with ID: %d\n", *created.Id)

	DeferCleanup(func(ctx context.Context) {
		DeletePetIfExists(client, ctx, *created.Id)
	})

	return created
}

// DeletePetIfExists removes a pet, a missing pet is not an error.
func DeletePetIfExists(client *APIClient, ctx context.Context, petID int64) {
	response, err := client.DeletePet(ctx, petID)
	Expect(err).NotTo(HaveOccurred())
	Expect(response).To(HaveStatus(http.StatusOK, http.StatusNotFound))
}

// CreateOrderWithCleanup places an order and schedules its deletion.
func CreateOrderWithCleanup(client *APIClient, ctx context.Context, order *openapi.Order) *openapi.Order {
	response, err := client.PlaceOrder(ctx, order)
	Expect(err).NotTo(HaveOccurred())
	Expect(response).To(HaveStatus(http.StatusOK))

	placed, err := Decode[openapi.Order](response)
	Expect(err).NotTo(HaveOccurred())
	Expect(placed.Id).NotTo(BeNil())

	GinkgoWriter.Printf("Placed order with ID: %d\n", *placed.Id)

	DeferCleanup(func(ctx context.Context) {
		DeleteOrderIfExists(client, ctx, *placed.Id)
	})

	return placed
}

// DeleteOrderIfExists removes an order, a missing order is not an error.
func DeleteOrderIfExists(client *APIClient, ctx context.Context, orderID int64) {
	response, err := client.DeleteOrder(ctx, orderID)
	Expect(err).NotTo(HaveOccurred())
	Expect(response).To(HaveStatus(http.StatusOK, http.StatusNotFound))
}

// CreateUserWithCleanup creates a user and schedules its deletion.
func CreateUserWithCleanup(client *APIClient, ctx context.Context, user *openapi.User) *openapi.User {
	Expect(user.Username).NotTo(BeNil())

	response, err := client.CreateUser(ctx, user)
	Expect(err).NotTo(HaveOccurred())
	Expect(response).To(HaveStatus(http.StatusOK))

	GinkgoWriter.Printf("Created user: %s\n", *user.Username)

	DeferUserCleanup(client, *user.Username)

	return user
}

// DeferUserCleanup schedules deletion of users created by other means,
// e.g. the bulk endpoints.
func DeferUserCleanup(client *APIClient, usernames ...string) {
	DeferCleanup(func(ctx context.Context) {
		for _, username := range usernames {
			DeleteUserIfExists(client, ctx, username)
		}
	})
}

// DeleteUserIfExists removes a user, a missing user is not an error.
func DeleteUserIfExists(client *APIClient, ctx context.Context, username string) {
	response, err := client.DeleteUser(ctx, username)
	Expect(err).NotTo(HaveOccurred())
	Expect(response).To(HaveStatus(http.StatusOK, http.StatusNotFound))
}

// ExpectGone waits for a deleted resource to read back as not found.
func ExpectGone(ctx context.Context, config *TestConfig, probe Probe) {
	response, err := WaitForStatus(ctx, config, probe, http.StatusNotFound)
	Expect(err).NotTo(HaveOccurred())
	Expect(response).To(HaveStatus(http.StatusNotFound))
}
