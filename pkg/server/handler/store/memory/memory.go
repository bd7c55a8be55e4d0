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

// Package memory is an in-process store, the default for hermetic runs.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/nscaledev/petstore-acceptance/pkg/openapi"
	"github.com/nscaledev/petstore-acceptance/pkg/server/handler/store"
)

type Store struct {
	lock   sync.RWMutex
	pets   map[int64]openapi.Pet
	orders map[int64]openapi.Order
	users  map[string]openapi.User
}

// Ensure the interface is implemented.
var _ store.Store = &Store{}

func New() *Store {
	return &Store{
		pets:   map[int64]openapi.Pet{},
		orders: map[int64]openapi.Order{},
		users:  map[string]openapi.User{},
	}
}

func (s *Store) PutPet(_ context.Context, pet *openapi.Pet) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.pets[*pet.Id] = *pet

	return nil
}

func (s *Store) GetPet(_ context.Context, id int64) (*openapi.Pet, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	pet, ok := s.pets[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	return &pet, nil
}

func (s *Store) DeletePet(_ context.Context, id int64) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.pets[id]; !ok {
		return store.ErrNotFound
	}

	delete(s.pets, id)

	return nil
}

func (s *Store) FindPetsByStatus(_ context.Context, statuses []openapi.PetStatus) (openapi.Pets, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	result := openapi.Pets{}

	for _, pet := range s.pets {
		if pet.Status != nil && slices.Contains(statuses, *pet.Status) {
			result = append(result, pet)
		}
	}

	slices.SortFunc(result, func(a, b openapi.Pet) int {
		return cmp.Compare(*a.Id, *b.Id)
	})

	return result, nil
}

func (s *Store) Inventory(_ context.Context) (openapi.Inventory, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	result := openapi.Inventory{}

	for _, pet := range s.pets {
		if pet.Status == nil {
			continue
		}

		result[string(*pet.Status)]++
	}

	return result, nil
}

func (s *Store) PutOrder(_ context.Context, order *openapi.Order) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.orders[*order.Id] = *order

	return nil
}

func (s *Store) GetOrder(_ context.Context, id int64) (*openapi.Order, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	return &order, nil
}

func (s *Store) DeleteOrder(_ context.Context, id int64) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.orders[id]; !ok {
		return store.ErrNotFound
	}

	delete(s.orders, id)

	return nil
}

func (s *Store) PutUser(_ context.Context, username string, user *openapi.User) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.users[username] = *user

	return nil
}

func (s *Store) GetUser(_ context.Context, username string) (*openapi.User, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	user, ok := s.users[username]
	if !ok {
		return nil, store.ErrNotFound
	}

	return &user, nil
}

func (s *Store) DeleteUser(_ context.Context, username string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.users[username]; !ok {
		return store.ErrNotFound
	}

	delete(s.users, username)

	return nil
}
