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

// Package postgres is a store backed by PostgreSQL, used when the fake pet
// store has to survive restarts or be shared between processes.
package postgres

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/nscaledev/petstore-acceptance/pkg/openapi"
	"github.com/nscaledev/petstore-acceptance/pkg/server/handler/store"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate brings the schema up to date.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("setting migration dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}

	return nil
}

type Store struct {
	pool *pgxpool.Pool
}

// Ensure the interface is implemented.
var _ store.Store = &Store{}

func New(pool *pgxpool.Pool) *Store {
	return &Store{
		pool: pool,
	}
}

func (s *Store) PutPet(ctx context.Context, pet *openapi.Pet) error {
	body, err := json.Marshal(pet)
	if err != nil {
		return fmt.Errorf("marshaling pet: %w", err)
	}

	var status *string

	if pet.Status != nil {
		value := string(*pet.Status)
		status = &value
	}

	query := `INSERT INTO pets (id, status, body) VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status, body = EXCLUDED.body`

	if _, err := s.pool.Exec(ctx, query, *pet.Id, status, body); err != nil {
		return fmt.Errorf("writing pet %d: %w", *pet.Id, err)
	}

	return nil
}

func (s *Store) GetPet(ctx context.Context, id int64) (*openapi.Pet, error) {
	var pet openapi.Pet

	if err := s.get(ctx, `SELECT body FROM pets WHERE id = $1`, id, &pet); err != nil {
		return nil, fmt.Errorf("reading pet %d: %w", id, err)
	}

	return &pet, nil
}

func (s *Store) DeletePet(ctx context.Context, id int64) error {
	if err := s.delete(ctx, `DELETE FROM pets WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting pet %d: %w", id, err)
	}

	return nil
}

func (s *Store) FindPetsByStatus(ctx context.Context, statuses []openapi.PetStatus) (openapi.Pets, error) {
	names := make([]string, len(statuses))
	for i := range statuses {
		names[i] = string(statuses[i])
	}

	rows, err := s.pool.Query(ctx, `SELECT body FROM pets WHERE status = ANY($1) ORDER BY id`, names)
	if err != nil {
		return nil, fmt.Errorf("searching pets: %w", err)
	}

	bodies, err := pgx.CollectRows(rows, pgx.RowTo[[]byte])
	if err != nil {
		return nil, fmt.Errorf("searching pets: %w", err)
	}

	result := make(openapi.Pets, len(bodies))

	for i := range bodies {
		if err := json.Unmarshal(bodies[i], &result[i]); err != nil {
			return nil, fmt.Errorf("unmarshaling pet: %w", err)
		}
	}

	return result, nil
}

func (s *Store) Inventory(ctx context.Context) (openapi.Inventory, error) {
	rows, err := s.pool.Query(ctx, `SELECT status, count(*) FROM pets WHERE status IS NOT NULL GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("counting pets: %w", err)
	}

	defer rows.Close()

	result := openapi.Inventory{}

	for rows.Next() {
		var (
			status string
			count  int64
		)

		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("counting pets: %w", err)
		}

		result[status] = int32(count) //nolint:gosec
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("counting pets: %w", err)
	}

	return result, nil
}

func (s *Store) PutOrder(ctx context.Context, order *openapi.Order) error {
	body, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("marshaling order: %w", err)
	}

	query := `INSERT INTO orders (id, body) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET body = EXCLUDED.body`

	if _, err := s.pool.Exec(ctx, query, *order.Id, body); err != nil {
		return fmt.Errorf("writing order %d: %w", *order.Id, err)
	}

	return nil
}

func (s *Store) GetOrder(ctx context.Context, id int64) (*openapi.Order, error) {
	var order openapi.Order

	if err := s.get(ctx, `SELECT body FROM orders WHERE id = $1`, id, &order); err != nil {
		return nil, fmt.Errorf("reading order %d: %w", id, err)
	}

	return &order, nil
}

func (s *Store) DeleteOrder(ctx context.Context, id int64) error {
	if err := s.delete(ctx, `DELETE FROM orders WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting order %d: %w", id, err)
	}

	return nil
}

func (s *Store) PutUser(ctx context.Context, username string, user *openapi.User) error {
	body, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshaling user: %w", err)
	}

	query := `INSERT INTO users (username, body) VALUES ($1, $2)
		ON CONFLICT (username) DO UPDATE SET body = EXCLUDED.body`

	if _, err := s.pool.Exec(ctx, query, username, body); err != nil {
		return fmt.Errorf("writing user %s: %w", username, err)
	}

	return nil
}

func (s *Store) GetUser(ctx context.Context, username string) (*openapi.User, error) {
	var user openapi.User

	if err := s.get(ctx, `SELECT body FROM users WHERE username = $1`, username, &user); err != nil {
		return nil, fmt.Errorf("reading user %s: %w", username, err)
	}

	return &user, nil
}

func (s *Store) DeleteUser(ctx context.Context, username string) error {
	if err := s.delete(ctx, `DELETE FROM users WHERE username = $1`, username); err != nil {
		return fmt.Errorf("deleting user %s: %w", username, err)
	}

	return nil
}

// get reads a single JSON body into out, mapping no rows to store.ErrNotFound.
func (s *Store) get(ctx context.Context, query string, key any, out any) error {
	var body []byte

	if err := s.pool.QueryRow(ctx, query, key).Scan(&body); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return store.ErrNotFound
		}

		return err
	}

	return json.Unmarshal(body, out)
}

// delete removes a single row, mapping no rows to store.ErrNotFound.
func (s *Store) delete(ctx context.Context, query string, key any) error {
	tag, err := s.pool.Exec(ctx, query, key)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}

	return nil
}
