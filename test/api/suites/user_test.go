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

var _ = Describe("User Management", func() {
	Context("When managing a user through its lifecycle", Ordered, func() {
		var user *openapi.User

		BeforeAll(func() {
			user = api.NewUserPayload().
				WithID(fixtures.UserID).
				WithUsername(fixtures.Username).
				WithPassword(fixtures.Password).
				Build()

			api.DeleteUserIfExists(client, ctx, fixtures.Username)
			api.DeferUserCleanup(client, fixtures.Username)
		})

		It("should create the user", func() {
			response, err := client.CreateUser(ctx, user)
			Expect(err).NotTo(HaveOccurred())
			Expect(response).To(api.HaveStatus(http.StatusOK))
			Expect(response).To(api.HaveAPIMessage(Not(BeEmpty())))
		})

		It("should log the user in", func() {
			response, err := client.LoginUser(ctx, openapi.LoginUserParams{
				Username: fixtures.Username,
				Password: fixtures.Password,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(response).To(api.HaveStatus(http.StatusOK))
			Expect(response).To(api.HaveAPIMessage(ContainSubstring("logged in user session")))
		})

		It("should log the user out", func() {
			response, err := client.LogoutUser(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(response).To(api.HaveStatus(http.StatusOK))
			Expect(response).To(api.HaveAPIMessage(Equal("ok")))
		})

		It("should update the user", func() {
			updated := *user
			updated.FirstName = ptr.To(fixtures.UpdatedFirstName)

			response, err := client.UpdateUser(ctx, fixtures.Username, &updated)
			Expect(err).NotTo(HaveOccurred())
			Expect(response).To(api.HaveStatus(http.StatusOK))

			response, err = api.WaitForStatus(ctx, config, func(ctx context.Context) (*apiclient.Response, error) {
				return client.GetUser(ctx, fixtures.Username)
			}, http.StatusOK)
			Expect(err).NotTo(HaveOccurred())

			fetched, err := api.Decode[openapi.User](response)
			Expect(err).NotTo(HaveOccurred())
			Expect(fetched).To(HaveField("Username", HaveValue(Equal(fixtures.Username))))
			Expect(fetched).To(HaveField("FirstName", HaveValue(Equal(fixtures.UpdatedFirstName))))
		})

		It("should delete the user", func() {
			response, err := client.DeleteUser(ctx, fixtures.Username)
			Expect(err).NotTo(HaveOccurred())
			Expect(response).To(api.HaveStatus(http.StatusOK))

			api.ExpectGone(ctx, config, func(ctx context.Context) (*apiclient.Response, error) {
				return client.GetUser(ctx, fixtures.Username)
			})
		})
	})

	Context("When creating users in bulk", func() {
		It("should create users from an array", func() {
			users := openapi.Users{
				*api.NewUserPayload().WithUsername("arrayuser1").Build(),
				*api.NewUserPayload().WithUsername("arrayuser2").Build(),
			}

			api.DeferUserCleanup(client, "arrayuser1", "arrayuser2")

			response, err := client.CreateUsersWithArray(ctx, users)
			Expect(err).NotTo(HaveOccurred())
			Expect(response).To(api.HaveStatus(http.StatusOK))
			Expect(response).To(api.HaveAPIMessage(Not(BeEmpty())))
		})

		It("should create users from a list", func() {
			users := openapi.Users{
				*api.NewUserPayload().WithUsername("listuser1").Build(),
				*api.NewUserPayload().WithUsername("listuser2").Build(),
			}

			api.DeferUserCleanup(client, "listuser1", "listuser2")

			response, err := client.CreateUsersWithList(ctx, users)
			Expect(err).NotTo(HaveOccurred())
			Expect(response).To(api.HaveStatus(http.StatusOK))
			Expect(response).To(api.HaveAPIMessage(Not(BeEmpty())))
		})
	})

	Context("When a user does not exist", func() {
		It("should return not found", func() {
			response, err := client.GetUser(ctx, fixtures.MissingUsername)
			Expect(err).NotTo(HaveOccurred())
			Expect(response).To(api.HaveStatus(http.StatusNotFound))
			Expect(response).To(api.HaveAPIMessage(Equal("User not found")))
		})
	})
})
