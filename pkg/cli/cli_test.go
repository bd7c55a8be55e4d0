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

package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/nscaledev/petstore-acceptance/pkg/cli"
	"github.com/nscaledev/petstore-acceptance/pkg/fixtures"
	"github.com/nscaledev/petstore-acceptance/pkg/openapi"
	"github.com/nscaledev/petstore-acceptance/pkg/server"
	"github.com/nscaledev/petstore-acceptance/pkg/server/handler/store/memory"

	"k8s.io/utils/ptr"
)

func newStore(t *testing.T) (*memory.Store, string) {
	t.Helper()

	s := memory.New()

	require.NoError(t, server.Seed(t.Context(), s))

	srv, err := server.New(nil, s)
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	return s, ts.URL + "/v2"
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, diagnostics bytes.Buffer

	cmd := cli.NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&diagnostics)

	err := cmd.ExecuteContext(t.Context())

	return out.String(), err
}

func TestInventoryJSON(t *testing.T) {
	t.Parallel()

	_, baseURL := newStore(t)

	out, err := run(t, "--base-url", baseURL, "inventory", "-o", "json")
	require.NoError(t, err)

	var inventory openapi.Inventory

	require.NoError(t, json.Unmarshal([]byte(out), &inventory))
	require.Equal(t, int32(1), inventory["available"])
}

func TestInventoryYAML(t *testing.T) {
	t.Parallel()

	_, baseURL := newStore(t)

	out, err := run(t, "--base-url", baseURL, "inventory")
	require.NoError(t, err)

	var inventory map[string]int

	require.NoError(t, yaml.Unmarshal([]byte(out), &inventory))
	require.Equal(t, 1, inventory["sold"])
}

func TestInventoryBadFormat(t *testing.T) {
	t.Parallel()

	_, baseURL := newStore(t)

	_, err := run(t, "--base-url", baseURL, "inventory", "-o", "xml")
	require.ErrorIs(t, err, cli.ErrOutputFormat)
}

func TestPets(t *testing.T) {
	t.Parallel()

	_, baseURL := newStore(t)

	out, err := run(t, "--base-url", baseURL, "pets", "--status", "pending", "-o", "json")
	require.NoError(t, err)
	require.Contains(t, out, "kitty")

	_, err = run(t, "--base-url", baseURL, "pets", "--status", "lost")
	require.ErrorIs(t, err, openapi.ErrInvalidPetStatus)
}

func TestCleanup(t *testing.T) {
	t.Parallel()

	s, baseURL := newStore(t)

	ctx := context.Background()

	require.NoError(t, s.PutPet(ctx, &openapi.Pet{Id: ptr.To(fixtures.PetID), Name: fixtures.PetName}))
	require.NoError(t, s.PutUser(ctx, fixtures.Username, &openapi.User{Username: ptr.To(fixtures.Username)}))

	out, err := run(t, "--base-url", baseURL, "cleanup")
	require.NoError(t, err)
	require.Contains(t, out, "deleted 2 fixtures")

	_, err = s.GetPet(ctx, fixtures.PetID)
	require.Error(t, err)

	// A second run finds nothing to do.
	out, err = run(t, "--base-url", baseURL, "cleanup")
	require.NoError(t, err)
	require.Contains(t, out, "deleted 0 fixtures")
}

func TestCleanupDryRun(t *testing.T) {
	t.Parallel()

	out, err := run(t, "cleanup", "--dry-run")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(fixtures.PetIDs())+len(fixtures.OrderIDs())+len(fixtures.Usernames()))
	require.Contains(t, lines, "/user/"+fixtures.Username)
}

// TestCleanupServerError ensures unexpected statuses abort the run.
func TestCleanupServerError(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(ts.Close)

	_, err := run(t, "--base-url", ts.URL, "cleanup")
	require.Error(t, err)
}
