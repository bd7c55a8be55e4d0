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
	"net/http"

	"github.com/spf13/cobra"

	"github.com/nscaledev/petstore-acceptance/pkg/openapi"
)

func newInventoryCommand(o *options) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Print pet counts by status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			response, err := o.client.Given().Get(cmd.Context(), "/store/inventory")
			if err != nil {
				return err
			}

			if err := response.ExpectStatus(http.StatusOK); err != nil {
				return err
			}

			var inventory openapi.Inventory

			if err := response.DecodeJSON(&inventory); err != nil {
				return err
			}

			return printOutput(cmd.OutOrStdout(), output, inventory)
		},
	}

	addOutputFlag(cmd, &output)

	return cmd
}

func newPetsCommand(o *options) *cobra.Command {
	var (
		output   string
		statuses []string
	)

	cmd := &cobra.Command{
		Use:   "pets",
		Short: "List pets by status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			request := o.client.Given()

			for _, status := range statuses {
				parsed, err := openapi.ParsePetStatus(status)
				if err != nil {
					return err
				}

				request = request.QueryParam("status", parsed)
			}

			response, err := request.Get(cmd.Context(), "/pet/findByStatus")
			if err != nil {
				return err
			}

			if err := response.ExpectStatus(http.StatusOK); err != nil {
				return err
			}

			var pets openapi.Pets

			if err := response.DecodeJSON(&pets); err != nil {
				return err
			}

			return printOutput(cmd.OutOrStdout(), output, pets)
		},
	}

	cmd.Flags().StringSliceVar(&statuses, "status", []string{string(openapi.PetStatusAvailable)}, "Statuses to list")
	addOutputFlag(cmd, &output)

	return cmd
}
