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

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	apiclient "github.com/nscaledev/petstore-acceptance/pkg/client"
	"github.com/nscaledev/petstore-acceptance/pkg/fixtures"
	"github.com/nscaledev/petstore-acceptance/pkg/openapi"
	"github.com/nscaledev/petstore-acceptance/test/api"

	"k8s.io/utils/ptr"
)

var _ = Describe("Pet Management", func() {
	Context("When managing a pet through its lifecycle", Ordered, func() {
		BeforeAll(func() {
			api.DeletePetIfExists(client, ctx, fixtures.PetID)

			DeferCleanup(func(ctx context.Context) {
				api.DeletePetIfExists(client, ctx, fixtures.PetID)
			})
		})

		It("should add a new pet", func() {
			pet := api.NewPetPayload().
				WithID(fixtures.PetID).
				WithName(fixtures.PetName).
				WithStatus(openapi.PetStatusAvailable).
				WithPhotoURLs("http://example.com/photo1.jpg").
				Build()

			response, err := client.AddPet(ctx, pet)
			Expect(err).NotTo(HaveOccurred())
			Expect(response).To(api.HaveStatus(http.StatusOK))

			created, err := api.Decode[openapi.Pet](response)
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(HaveField("Id", HaveValue(Equal(fixtures.PetID))))
			Expect(created).To(HaveField("Name", Equal(fixtures.PetName)))
			Expect(created).To(HaveField("Status", HaveValue(Equal(openapi.PetStatusAvailable))))
		})

		It("should get the pet by ID", func() {
			response, err := client.GetPet(ctx, fixtures.PetID)
			Expect(err).NotTo(HaveOccurred())
			Expect(response).To(api.HaveStatus(http.StatusOK))

			pet, err := api.Decode[openapi.Pet](response)
			Expect(err).NotTo(HaveOccurred())
			Expect(pet).To(HaveField("Id", HaveValue(Equal(fixtures.PetID))))
			Expect(pet).To(HaveField("Name", Equal(fixtures.PetName)))
			Expect(pet).To(HaveField("Status", HaveValue(Equal(openapi.PetStatusAvailable))))
		})

		It("should update the pet", func() {
			pet := api.NewPetPayload().
				WithID(fixtures.PetID).
				WithName(fixtures.UpdatedPetName).
				WithStatus(openapi.PetStatusSold).
				WithPhotoURLs("http://example.com/photo2.jpg").
				Build()

			response, err := client.UpdatePet(ctx, pet)
			Expect(err).NotTo(HaveOccurred())
			Expect(response).To(api.HaveStatus(http.StatusOK))

			updated, err := api.Decode[openapi.Pet](response)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated).To(HaveField("Id", HaveValue(Equal(fixtures.PetID))))
			Expect(updated).To(HaveField("Name", Equal(fixtures.UpdatedPetName)))
			Expect(updated).To(HaveField("Status", HaveValue(Equal(openapi.PetStatusSold))))
		})

		It("should delete the pet", func() {
			response, err := client.DeletePet(ctx, fixtures.PetID)
			Expect(err).NotTo(HaveOccurred())
			Expect(response).To(api.HaveStatus(http.StatusOK))

			api.ExpectGone(ctx, config, func(ctx context.Context) (*apiclient.Response, error) {
				return client.GetPet(ctx, fixtures.PetID)
			})
		})
	})

	Context("When searching for pets", func() {
		It("should only return pets with the requested status", func() {
			response, err := client.FindPetsByStatus(ctx, openapi.PetStatusAvailable)
			Expect(err).NotTo(HaveOccurred())
			Expect(response).To(api.HaveStatus(http.StatusOK))

			pets, err := api.Decode[openapi.Pets](response)
			Expect(err).NotTo(HaveOccurred())
			Expect(*pets).NotTo(BeEmpty())
			Expect(*pets).To(HaveEach(HaveField("Status", HaveValue(Equal(openapi.PetStatusAvailable)))))
		})
	})

	Context("When a pet does not exist", func() {
		It("should return not found", func() {
			response, err := client.GetPet(ctx, fixtures.MissingPetID)
			Expect(err).NotTo(HaveOccurred())
			Expect(response).To(api.HaveStatus(http.StatusNotFound))
			Expect(response).To(api.HaveAPIMessage(Equal("Pet not found")))
		})
	})

	Context("When adding a pet without data", func() {
		It("should reject the request", func() {
			response, err := client.AddPet(ctx, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(response).To(api.HaveStatus(http.StatusBadRequest, http.StatusMethodNotAllowed, http.StatusInternalServerError))
		})
	})

	Context("When updating a pet with form data", func() {
		BeforeEach(func() {
			api.CreatePetWithCleanup(client, ctx, api.NewPetPayload().
				WithID(fixtures.FormPetID).
				WithName("Form Pet").
				Build())
		})

		It("should update the name and status", func() {
			response, err := client.UpdatePetWithForm(ctx, fixtures.FormPetID, openapi.UpdatePetWithFormFormdataRequestBody{
				Name:   ptr.To("Updated Form Pet"),
				Status: ptr.To(string(openapi.PetStatusPending)),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(response).To(api.HaveStatus(http.StatusOK))
		})
	})
})
