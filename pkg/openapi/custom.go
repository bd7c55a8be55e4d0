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

package openapi

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidPetStatus = errors.New("invalid pet status: must be one of available, pending or sold")

// PetStatuses returns all statuses the server recognises in searches.
func PetStatuses() []PetStatus {
	return []PetStatus{PetStatusAvailable, PetStatusPending, PetStatusSold}
}

// ParsePetStatus checks a search status.
func ParsePetStatus(s string) (PetStatus, error) {
	switch status := PetStatus(s); status {
	case PetStatusAvailable, PetStatusPending, PetStatusSold:
		return status, nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidPetStatus, s)
}

// ShipDateLayout is the ISO-8601 layout used for order ship dates, with
// millisecond precision and a literal UTC designator.
const ShipDateLayout = "2006-01-02T15:04:05.000Z"

// FormatShipDate renders a ship date the way clients submit them.
func FormatShipDate(t time.Time) string {
	return t.UTC().Format(ShipDateLayout)
}
