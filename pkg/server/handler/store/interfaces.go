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

// Package store defines persistence for the fake pet store.
package store

import (
	"context"
	"errors"

	"github.com/nscaledev/petstore-acceptance/pkg/openapi"
)

var ErrNotFound = errors.New("resource not found")

//go:generate mockgen -source=interfaces.go -destination=mock/interfaces.go -package=mock

// Store persists pets, orders and users.  Writes are upserts, the public pet
// store does not distinguish between create and replace.
type Store interface {
	// PutPet creates or replaces a pet, the pet must have an ID.
	PutPet(ctx context.Context, pet *openapi.Pet) error
	// GetPet returns ErrNotFound when the pet does not exist.
	GetPet(ctx context.Context, id int64) (*openapi.Pet, error)
	// DeletePet returns ErrNotFound when the pet does not exist.
	DeletePet(ctx context.Context, id int64) error
	// FindPetsByStatus returns pets whose status is one of statuses, ordered by ID.
	FindPetsByStatus(ctx context.Context, statuses []openapi.PetStatus) (openapi.Pets, error)
	// Inventory counts pets by status, pets without a status are not counted.
	Inventory(ctx context.Context) (openapi.Inventory, error)

	// PutOrder creates or replaces an order, the order must have an ID.
	PutOrder(ctx context.Context, order *openapi.Order) error
	// GetOrder returns ErrNotFound when the order does not exist.
	GetOrder(ctx context.Context, id int64) (*openapi.Order, error)
	// DeleteOrder returns ErrNotFound when the order does not exist.
	DeleteOrder(ctx context.Context, id int64) error

	// PutUser creates or replaces a user keyed by username.
	PutUser(ctx context.Context, username string, user *openapi.User) error
	// GetUser returns ErrNotFound when the user does not exist.
	GetUser(ctx context.Context, username string) (*openapi.User, error)
	// DeleteUser returns ErrNotFound when the user does not exist.
	DeleteUser(ctx context.Context, username string) error
}
