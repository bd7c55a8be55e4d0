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

package server

import (
	"context"
	"fmt"

	"github.com/nscaledev/petstore-acceptance/pkg/openapi"
	"github.com/nscaledev/petstore-acceptance/pkg/server/handler/store"

	"k8s.io/utils/ptr"
)

// seedPets gives every status at least one pet so searches and the
// inventory are never empty.  IDs are kept clear of the test fixtures.
func seedPets() openapi.Pets {
	return openapi.Pets{
		{
			Id:        ptr.To[int64](1),
			Name:      "doggie",
			Category:  &openapi.Category{Id: ptr.To[int64](1), Name: ptr.To("Dogs")},
			PhotoUrls: []string{"http://example.com/doggie.jpg"},
			Tags:      &[]openapi.Tag{{Id: ptr.To[int64](1), Name: ptr.To("friendly")}},
			Status:    ptr.To(openapi.PetStatusAvailable),
		},
		{
			Id:        ptr.To[int64](2),
			Name:      "kitty",
			Category:  &openapi.Category{Id: ptr.To[int64](2), Name: ptr.To("Cats")},
			PhotoUrls: []string{"http://example.com/kitty.jpg"},
			Status:    ptr.To(openapi.PetStatusPending),
		},
		{
			Id:        ptr.To[int64](3),
			Name:      "bunny",
			Category:  &openapi.Category{Id: ptr.To[int64](3), Name: ptr.To("Rabbits")},
			PhotoUrls: []string{"http://example.com/bunny.jpg"},
			Status:    ptr.To(openapi.PetStatusSold),
		},
	}
}

// Seed populates the store with sample data.  It is idempotent.
func Seed(ctx context.Context, s store.Store) error {
	for _, pet := range seedPets() {
		if err := s.PutPet(ctx, &pet); err != nil {
			return fmt.Errorf("seeding pet %s: %w", pet.Name, err)
		}
	}

	order := &openapi.Order{
		Id:       ptr.To[int64](1),
		PetId:    ptr.To[int64](3),
		Quantity: ptr.To[int32](1),
		ShipDate: ptr.To("2024-01-01T00:00:00.000Z"),
		Status:   ptr.To(openapi.OrderStatusDelivered),
		Complete: ptr.To(true),
	}

	if err := s.PutOrder(ctx, order); err != nil {
		return fmt.Errorf("seeding order: %w", err)
	}

	user := &openapi.User{
		Id:         ptr.To[int64](1),
		Username:   ptr.To("user1"),
		FirstName:  ptr.To("first name 1"),
		LastName:   ptr.To("last name 1"),
		Email:      ptr.To("email1@test.com"),
		Password:   ptr.To("XXXXXXXXXXX"),
		Phone:      ptr.To("123-456-7890"),
		UserStatus: ptr.To[int32](1),
	}

	if err := s.PutUser(ctx, *user.Username, user); err != nil {
		return fmt.Errorf("seeding user: %w", err)
	}

	return nil
}
