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

package postgres_test

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/nscaledev/petstore-acceptance/pkg/fixtures"
	"github.com/nscaledev/petstore-acceptance/pkg/openapi"
	"github.com/nscaledev/petstore-acceptance/pkg/server/handler/store"
	"github.com/nscaledev/petstore-acceptance/pkg/server/handler/store/postgres"

	"k8s.io/utils/ptr"
)

// newStore connects to PETSTORE_TEST_DATABASE_URL, tests are skipped when
// it is not set.  Tables are truncated before use.
func newStore(t *testing.T) *postgres.Store {
	t.Helper()

	databaseURL := os.Getenv("PETSTORE_TEST_DATABASE_URL")
	if databaseURL == "" {
		t.Skip("PETSTORE_TEST_DATABASE_URL not set")
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, databaseURL)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.Migrate(ctx, pool))

	_, err = pool.Exec(ctx, `TRUNCATE pets, orders, users`)
	require.NoError(t, err)

	return postgres.New(pool)
}

func TestPets(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	pet := &openapi.Pet{
		Id:        ptr.To(fixtures.PetID),
		Name:      fixtures.PetName,
		PhotoUrls: []string{"http://example.com/photo1.jpg"},
		Status:    ptr.To(openapi.PetStatusAvailable),
	}

	require.NoError(t, s.PutPet(ctx, pet))

	found, err := s.GetPet(ctx, fixtures.PetID)
	require.NoError(t, err)
	require.Equal(t, pet, found)

	pet.Status = ptr.To(openapi.PetStatusSold)
	require.NoError(t, s.PutPet(ctx, pet))

	available, err := s.FindPetsByStatus(ctx, []openapi.PetStatus{openapi.PetStatusAvailable})
	require.NoError(t, err)
	require.Empty(t, available)

	inventory, err := s.Inventory(ctx)
	require.NoError(t, err)
	require.Equal(t, openapi.Inventory{"sold": 1}, inventory)

	require.NoError(t, s.DeletePet(ctx, fixtures.PetID))
	require.ErrorIs(t, s.DeletePet(ctx, fixtures.PetID), store.ErrNotFound)

	_, err = s.GetPet(ctx, fixtures.PetID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestOrdersAndUsers(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.PutOrder(ctx, &openapi.Order{Id: ptr.To(fixtures.IncompleteOrderID)}))

	order, err := s.GetOrder(ctx, fixtures.IncompleteOrderID)
	require.NoError(t, err)
	require.Nil(t, order.PetId)

	require.NoError(t, s.DeleteOrder(ctx, fixtures.IncompleteOrderID))
	require.ErrorIs(t, s.DeleteOrder(ctx, fixtures.IncompleteOrderID), store.ErrNotFound)

	require.NoError(t, s.PutUser(ctx, fixtures.Username, &openapi.User{Username: ptr.To(fixtures.Username)}))

	user, err := s.GetUser(ctx, fixtures.Username)
	require.NoError(t, err)
	require.Equal(t, fixtures.Username, *user.Username)

	require.NoError(t, s.DeleteUser(ctx, fixtures.Username))

	_, err = s.GetUser(ctx, fixtures.Username)
	require.ErrorIs(t, err, store.ErrNotFound)
}
