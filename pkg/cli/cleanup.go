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

package cli

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nscaledev/petstore-acceptance/pkg/client"
	"github.com/nscaledev/petstore-acceptance/pkg/fixtures"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// cleanupResult tallies a cleanup run.
type cleanupResult struct {
	Deleted int `json:"deleted"`
	Absent  int `json:"absent"`
}

func newCleanupCommand(o *options) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete every fixture the acceptance suites create",
		Long: `Delete the well known pets, orders and users created by the acceptance
suites.  Fixtures that do not exist are already clean and are not an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dryRun {
				for _, path := range fixturePaths() {
					fmt.Fprintln(cmd.OutOrStdout(), path)
				}

				return nil
			}

			result, err := cleanup(cmd.Context(), o.client)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d fixtures, %d already absent\n", result.Deleted, result.Absent)

			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the resources that would be deleted")

	return cmd
}

// fixturePaths lists the resource path of every fixture.
func fixturePaths() []string {
	var paths []string

	for _, id := range fixtures.PetIDs() {
		paths = append(paths, "/pet/"+strconv.FormatInt(id, 10))
	}

	for _, id := range fixtures.OrderIDs() {
		paths = append(paths, "/store/order/"+strconv.FormatInt(id, 10))
	}

	for _, username := range fixtures.Usernames() {
		paths = append(paths, "/user/"+username)
	}

	return paths
}

func cleanup(ctx context.Context, c *client.Client) (*cleanupResult, error) {
	log := log.FromContext(ctx)

	result := &cleanupResult{}

	for _, path := range fixturePaths() {
		response, err := c.GivenWithoutContentType().Delete(ctx, path)
		if err != nil {
			return nil, err
		}

		if err := response.ExpectStatus(http.StatusOK, http.StatusNotFound); err != nil {
			return nil, err
		}

		if response.StatusCode == http.StatusNotFound {
			log.V(1).Info("fixture already absent", "path", path)

			result.Absent++

			continue
		}

		log.Info("fixture deleted", "path", path)

		result.Deleted++
	}

	return result, nil
}
