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

// Endpoints contains all API endpoint patterns, relative to the base URL.
// Placeholders are expanded by the request builder.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// Pet endpoints.
func (e *Endpoints) Pets() string {
	return "/pet"
}

func (e *Endpoints) PetsByStatus() string {
	return "/pet/findByStatus"
}

func (e *Endpoints) Pet() string {
	return "/pet/{petId}"
}

// Store endpoints.
func (e *Endpoints) Inventory() string {
	return "/store/inventory"
}

func (e *Endpoints) Orders() string {
	return "/store/order"
}

func (e *Endpoints) Order() string {
	return "/store/order/{orderId}"
}

// User endpoints.
func (e *Endpoints) Users() string {
	return "/user"
}

func (e *Endpoints) UsersWithArray() string {
	return "/user/createWithArray"
}

func (e *Endpoints) UsersWithList() string {
	return "/user/createWithList"
}

func (e *Endpoints) Login() string {
	return "/user/login"
}

func (e *Endpoints) Logout() string {
	return "/user/logout"
}

func (e *Endpoints) User() string {
	return "/user/{username}"
}
