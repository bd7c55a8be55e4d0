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

// Package fixtures holds the well known identifiers the acceptance suites
// create against a shared pet store. They are fixed so that a failed run can
// be cleaned up after the fact with petstorectl.
package fixtures

const (
	// PetID is the pet driven through the create, read, update, delete pipeline.
	PetID int64 = 12345678
	// PetName is the name PetID is created with.
	PetName = "Rocket"
	// UpdatedPetName is the name PetID is renamed to.
	UpdatedPetName = "Rocket Raccoon"
	// MissingPetID is never created.
	MissingPetID int64 = 12345933
	// FormPetID is the pet updated via form data.
	FormPetID int64 = 54321

	// OrderID is the order driven through the place, read, delete pipeline.
	OrderID int64 = 98765
	// OrderPetID is the pet referenced by placed orders.
	OrderPetID int64 = 12345
	// IncompleteOrderID is placed with every optional field omitted.
	IncompleteOrderID int64 = 55555
	// NegativeQuantityOrderID is placed with a quantity of -1.
	NegativeQuantityOrderID int64 = 77777
	// MissingOrderID is never placed.
	MissingOrderID int64 = 999999999

	// UserID is the id of Username.
	UserID int64 = 12345
	// Username is the user driven through the create, login, update, delete pipeline.
	Username = "testuser123"
	// Password is the password Username is created with.
	Password = "testpass123"
	// UpdatedFirstName is the first name Username is updated to.
	UpdatedFirstName = "Updated"
	// MissingUsername is never created.
	MissingUsername = "nonexistentuser"
)

// PetIDs returns every pet id the suites may leave behind.
func PetIDs() []int64 {
	return []int64{PetID, FormPetID}
}

// OrderIDs returns every order id the suites may leave behind.
func OrderIDs() []int64 {
	return []int64{OrderID, IncompleteOrderID, NegativeQuantityOrderID}
}

// Usernames returns every username the suites may leave behind.
func Usernames() []string {
	return []string{Username, "arrayuser1", "arrayuser2", "listuser1", "listuser2"}
}
