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
	"github.com/onsi/gomega"
	"github.com/onsi/gomega/types"

	"github.com/nscaledev/petstore-acceptance/pkg/client"
	"github.com/nscaledev/petstore-acceptance/pkg/openapi"
)

// HaveStatus succeeds when a *client.Response has one of the status codes.
func HaveStatus(codes ...int) types.GomegaMatcher {
	elements := make([]any, len(codes))
	for i := range codes {
		elements[i] = codes[i]
	}

	return gomega.WithTransform(func(response *client.Response) int {
		return response.StatusCode
	}, gomega.BeElementOf(elements...))
}

// HaveAPIMessage succeeds when a *client.Response carries an ApiResponse
// whose message satisfies the matcher.
func HaveAPIMessage(matcher types.GomegaMatcher) types.GomegaMatcher {
	return gomega.WithTransform(func(response *client.Response) (*openapi.ApiResponse, error) {
		return response.APIResponse()
	}, gomega.HaveField("Message", gomega.HaveValue(matcher)))
}

// HaveJSONObjectBody succeeds when a *client.Response body is a JSON object.
func HaveJSONObjectBody() types.GomegaMatcher {
	return gomega.WithTransform(func(response *client.Response) (map[string]any, error) {
		var object map[string]any

		if err := response.DecodeJSON(&object); err != nil {
			return nil, err
		}

		return object, nil
	}, gomega.Not(gomega.BeNil()))
}
