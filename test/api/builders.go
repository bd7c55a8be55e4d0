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

package api

import (
	"time"

	"github.com/nscaledev/petstore-acceptance/pkg/fixtures"
	"github.com/nscaledev/petstore-acceptance/pkg/openapi"

	"k8s.io/apimachinery/pkg/util/rand"
	"k8s.io/utils/ptr"
)

// Generated IDs are kept well clear of the well known fixtures, and of IDs
// the public service allocates itself.
const (
	generatedIDMin = 7_000_000_000
	generatedIDMax = 8_000_000_000
)

// uniqueID returns a random ID for entities that are not fixtures.
func uniqueID() int64 {
	return rand.Int63nRange(generatedIDMin, generatedIDMax)
}

// PetPayloadBuilder builds pet payloads for testing.
type PetPayloadBuilder struct {
	payload openapi.Pet
}

// NewPetPayload creates a new available pet with a unique ID and name.
func NewPetPayload() *PetPayloadBuilder {
	return &PetPayloadBuilder{
		payload: openapi.Pet{
			Id:   ptr.To(uniqueID()),
			Name: "testautomation-" + rand.String(8),
			Category: &openapi.Category{
				Id:   ptr.To[int64](1),
				Name: ptr.To("Dogs"),
			},
			PhotoUrls: []string{"http://example.com/photo1.jpg"},
			Status:    ptr.To(openapi.PetStatusAvailable),
		},
	}
}

// WithID sets the pet ID.
func (b *PetPayloadBuilder) WithID(id int64) *PetPayloadBuilder {
	b.payload.Id = ptr.To(id)
	return b
}

// WithoutID omits the ID so that the server allocates one.
func (b *PetPayloadBuilder) WithoutID() *PetPayloadBuilder {
	b.payload.Id = nil
	return b
}

// WithName sets the pet name.
func (b *PetPayloadBuilder) WithName(name string) *PetPayloadBuilder {
	b.payload.Name = name
	return b
}

// WithStatus sets the pet status.
func (b *PetPayloadBuilder) WithStatus(status openapi.PetStatus) *PetPayloadBuilder {
	b.payload.Status = ptr.To(status)
	return b
}

// WithPhotoURLs replaces the photo URLs.
func (b *PetPayloadBuilder) WithPhotoURLs(urls ...string) *PetPayloadBuilder {
	b.payload.PhotoUrls = urls
	return b
}

// WithCategory sets the category.
func (b *PetPayloadBuilder) WithCategory(id int64, name string) *PetPayloadBuilder {
	b.payload.Category = &openapi.Category{
		Id:   ptr.To(id),
		Name: ptr.To(name),
	}

	return b
}

// WithTag adds a tag.
func (b *PetPayloadBuilder) WithTag(id int64, name string) *PetPayloadBuilder {
	if b.payload.Tags == nil {
		b.payload.Tags = &[]openapi.Tag{}
	}

	*b.payload.Tags = append(*b.payload.Tags, openapi.Tag{
		Id:   ptr.To(id),
		Name: ptr.To(name),
	})

	return b
}

// Build returns the completed pet, each call returns a new copy.
func (b *PetPayloadBuilder) Build() *openapi.Pet {
	pet := b.payload

	pet.PhotoUrls = append([]string(nil), b.payload.PhotoUrls...)

	if b.payload.Tags != nil {
		pet.Tags = ptr.To(append([]openapi.Tag(nil), *b.payload.Tags...))
	}

	return &pet
}

// OrderPayloadBuilder builds order payloads for testing.
type OrderPayloadBuilder struct {
	payload openapi.Order
}

// NewOrderPayload creates a complete, placed order for a single fixture pet
// shipping now.
func NewOrderPayload() *OrderPayloadBuilder {
	return &OrderPayloadBuilder{
		payload: openapi.Order{
			Id:       ptr.To(uniqueID()),
			PetId:    ptr.To(fixtures.OrderPetID),
			Quantity: ptr.To[int32](1),
			ShipDate: ptr.To(openapi.FormatShipDate(time.Now())),
			Status:   ptr.To(openapi.OrderStatusPlaced),
			Complete: ptr.To(true),
		},
	}
}

// NewIncompleteOrderPayload creates an order carrying only an ID.
func NewIncompleteOrderPayload(id int64) *OrderPayloadBuilder {
	return &OrderPayloadBuilder{
		payload: openapi.Order{
			Id: ptr.To(id),
		},
	}
}

// WithID sets the order ID.
func (b *OrderPayloadBuilder) WithID(id int64) *OrderPayloadBuilder {
	b.payload.Id = ptr.To(id)
	return b
}

// WithPetID sets the ordered pet.
func (b *OrderPayloadBuilder) WithPetID(id int64) *OrderPayloadBuilder {
	b.payload.PetId = ptr.To(id)
	return b
}

// WithQuantity sets the quantity, the server accepts negative values.
func (b *OrderPayloadBuilder) WithQuantity(quantity int32) *OrderPayloadBuilder {
	b.payload.Quantity = ptr.To(quantity)
	return b
}

// WithShipDate sets the ship date.
func (b *OrderPayloadBuilder) WithShipDate(t time.Time) *OrderPayloadBuilder {
	b.payload.ShipDate = ptr.To(openapi.FormatShipDate(t))
	return b
}

// WithStatus sets the order status.
func (b *OrderPayloadBuilder) WithStatus(status openapi.OrderStatus) *OrderPayloadBuilder {
	b.payload.Status = ptr.To(status)
	return b
}

// WithComplete sets whether the order is complete.
func (b *OrderPayloadBuilder) WithComplete(complete bool) *OrderPayloadBuilder {
	b.payload.Complete = ptr.To(complete)
	return b
}

// Build returns the completed order.
func (b *OrderPayloadBuilder) Build() *openapi.Order {
	order := b.payload
	return &order
}

// UserPayloadBuilder builds user payloads for testing.
type UserPayloadBuilder struct {
	payload openapi.User
}

// NewUserPayload creates a user with a unique ID and username.
func NewUserPayload() *UserPayloadBuilder {
	username := "testautomation-" + rand.String(8)

	return &UserPayloadBuilder{
		payload: openapi.User{
			Id:         ptr.To(uniqueID()),
			Username:   ptr.To(username),
			FirstName:  ptr.To("Test"),
			LastName:   ptr.To("User"),
			Email:      ptr.To(username + "@example.com"),
			Password:   ptr.To(fixtures.Password),
			Phone:      ptr.To("1234567890"),
			UserStatus: ptr.To[int32](1),
		},
	}
}

// WithID sets the user ID.
func (b *UserPayloadBuilder) WithID(id int64) *UserPayloadBuilder {
	b.payload.Id = ptr.To(id)
	return b
}

// WithUsername sets the username and derives the email from it.
func (b *UserPayloadBuilder) WithUsername(username string) *UserPayloadBuilder {
	b.payload.Username = ptr.To(username)
	b.payload.Email = ptr.To(username + "@example.com")

	return b
}

// WithPassword sets the password.
func (b *UserPayloadBuilder) WithPassword(password string) *UserPayloadBuilder {
	b.payload.Password = ptr.To(password)
	return b
}

// WithFirstName sets the first name.
func (b *UserPayloadBuilder) WithFirstName(name string) *UserPayloadBuilder {
	b.payload.FirstName = ptr.To(name)
	return b
}

// WithLastName sets the last name.
func (b *UserPayloadBuilder) WithLastName(name string) *UserPayloadBuilder {
	b.payload.LastName = ptr.To(name)
	return b
}

// Build returns the completed user.
func (b *UserPayloadBuilder) Build() *openapi.User {
	user := b.payload
	return &user
}
