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
	"context"
	"net/http/httptest"

	"github.com/nscaledev/petstore-acceptance/pkg/constants"
	"github.com/nscaledev/petstore-acceptance/pkg/server"
	"github.com/nscaledev/petstore-acceptance/pkg/server/handler/store/memory"
)

// LocalServer is an in-process fake pet store.
type LocalServer struct {
	server *httptest.Server
}

// StartLocalServer starts a seeded fake pet store on a loopback port.
func StartLocalServer(ctx context.Context) (*LocalServer, error) {
	store := memory.New()

	if err := server.Seed(ctx, store); err != nil {
		return nil, err
	}

	srv, err := server.New(server.DefaultOptions(), store)
	if err != nil {
		return nil, err
	}

	return &LocalServer{
		server: httptest.NewServer(srv.Handler()),
	}, nil
}

// BaseURL is the API base URL of the server, including the base path.
func (s *LocalServer) BaseURL() string {
	return s.server.URL + constants.DefaultBasePath
}

func (s *LocalServer) Close() {
	s.server.Close()
}
