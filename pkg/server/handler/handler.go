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

//nolint:revive
package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/spjmurray/go-util/pkg/set"

	"github.com/nscaledev/petstore-acceptance/pkg/openapi"
	"github.com/nscaledev/petstore-acceptance/pkg/server/handler/store"

	"k8s.io/utils/ptr"
	"sigs.k8s.io/controller-runtime/pkg/log"
)

var ErrMissingStore = errors.New("handler requires a store")

// expiryLayout is the Java date format used by X-Expires-After.
const expiryLayout = "Mon Jan 02 15:04:05 MST 2006"

type Handler struct {
	// store persists pets, orders and users.
	store store.Store

	// options allows behaviour to be defined on the CLI.
	options *Options

	// lastID is the last ID handed to an entity created without one.
	lastID atomic.Int64

	// now is the clock used for session expiry.
	now func() time.Time
}

func New(store store.Store, options *Options) (*Handler, error) {
	if store == nil {
		return nil, ErrMissingStore
	}

	if options == nil {
		options = DefaultOptions()
	}

	h := &Handler{
		store:   store,
		options: options,
		now:     time.Now,
	}

	h.lastID.Store(options.FirstID - 1)

	return h, nil
}

var _ openapi.ServerInterface = (*Handler)(nil)

// Register attaches all pet store routes to the router.
func (h *Handler) Register(r chi.Router) {
	openapi.HandlerWithOptions(h, openapi.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: HandleParameterError,
	})
}

// HandleParameterError reports parameters the router could not bind with
// the messages the service uses for them.
func HandleParameterError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		required *openapi.RequiredParamError
		invalid  *openapi.InvalidParamFormatError
		name     string
	)

	switch {
	case errors.As(err, &required):
		name = required.ParamName
	case errors.As(err, &invalid):
		name = invalid.ParamName
	}

	switch name {
	case "status":
		badRequest(w, r, "Invalid status value")
	case "username", "password":
		badRequest(w, r, "Invalid username/password supplied")
	default:
		badRequest(w, r, err.Error())
	}
}

func (h *Handler) allocateID() int64 {
	return h.lastID.Add(1)
}

// parseID converts a textual ID, anything unparseable gets the service's
// number format error.
func parseID(w http.ResponseWriter, r *http.Request, raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		numberFormat(w, r, raw)
		return 0, false
	}

	return id, true
}

// readBody returns the request body, or nil if it is blank.
func readBody(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	return body, nil
}

func (h *Handler) AddPet(w http.ResponseWriter, r *http.Request) {
	h.savePet(w, r)
}

func (h *Handler) UpdatePet(w http.ResponseWriter, r *http.Request) {
	h.savePet(w, r)
}

// savePet handles both add and update, the service upserts either way.
func (h *Handler) savePet(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		serverError(w, r, err)
		return
	}

	if body == nil {
		noData(w, r)
		return
	}

	pet := &openapi.Pet{}

	if err := json.Unmarshal(body, pet); err != nil {
		badRequest(w, r, "bad input")
		return
	}

	if pet.Id == nil || *pet.Id == 0 {
		pet.Id = ptr.To(h.allocateID())
	}

	if err := h.store.PutPet(r.Context(), pet); err != nil {
		serverError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, pet)
}

// FindPetsByStatus accepts repeated and comma separated statuses.
func (h *Handler) FindPetsByStatus(w http.ResponseWriter, r *http.Request, params openapi.FindPetsByStatusParams) {
	var named []openapi.PetStatus

	for _, value := range params.Status {
		for _, status := range strings.Split(value, ",") {
			named = append(named, openapi.PetStatus(status))
		}
	}

	requested := set.New(named...)

	for range requested.Difference(set.New(openapi.PetStatuses()...)).All() {
		badRequest(w, r, "Invalid status value")
		return
	}

	var statuses []openapi.PetStatus

	for status := range requested.All() {
		statuses = append(statuses, status)
	}

	slices.Sort(statuses)

	result, err := h.store.FindPetsByStatus(r.Context(), statuses)
	if err != nil {
		serverError(w, r, err)
		return
	}

	if result == nil {
		result = openapi.Pets{}
	}

	writeJSON(w, r, http.StatusOK, result)
}

func (h *Handler) GetPetById(w http.ResponseWriter, r *http.Request, petId openapi.PetIdParameter) {
	id, valid := parseID(w, r, petId)
	if !valid {
		return
	}

	pet, err := h.store.GetPet(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			notFound(w, r, "Pet not found")
			return
		}

		serverError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, pet)
}

// UpdatePetWithForm updates a pet's name and status from form data.
func (h *Handler) UpdatePetWithForm(w http.ResponseWriter, r *http.Request, petId openapi.PetIdParameter) {
	id, valid := parseID(w, r, petId)
	if !valid {
		return
	}

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/x-www-form-urlencoded" {
		unsupportedMediaType(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		badRequest(w, r, "bad input")
		return
	}

	pet, err := h.store.GetPet(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, r, http.StatusNotFound, apiResponse(http.StatusNotFound, typeUnknown, "not found"))
			return
		}

		serverError(w, r, err)

		return
	}

	if name := r.PostForm.Get("name"); name != "" {
		pet.Name = name
	}

	if status := r.PostForm.Get("status"); status != "" {
		pet.Status = ptr.To(openapi.PetStatus(status))
	}

	if err := h.store.PutPet(r.Context(), pet); err != nil {
		serverError(w, r, err)
		return
	}

	okID(w, r, id)
}

func (h *Handler) DeletePet(w http.ResponseWriter, r *http.Request, petId openapi.PetIdParameter) {
	id, valid := parseID(w, r, petId)
	if !valid {
		return
	}

	if err := h.store.DeletePet(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			notFoundEmpty(w)
			return
		}

		serverError(w, r, err)

		return
	}

	okID(w, r, id)
}

func (h *Handler) GetInventory(w http.ResponseWriter, r *http.Request) {
	result, err := h.store.Inventory(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, result)
}

// PlaceOrder accepts orders with missing or nonsensical fields, only
// undecodable bodies are rejected.
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		serverError(w, r, err)
		return
	}

	if body == nil {
		badRequest(w, r, "No data")
		return
	}

	order := &openapi.Order{}

	if err := json.Unmarshal(body, order); err != nil {
		serverError(w, r, fmt.Errorf("decoding order: %w", err))
		return
	}

	if order.Id == nil || *order.Id == 0 {
		order.Id = ptr.To(h.allocateID())
	}

	if err := h.store.PutOrder(r.Context(), order); err != nil {
		serverError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, order)
}

func (h *Handler) GetOrderById(w http.ResponseWriter, r *http.Request, orderId openapi.OrderIdParameter) {
	id, valid := parseID(w, r, orderId)
	if !valid {
		return
	}

	order, err := h.store.GetOrder(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			notFound(w, r, "Order not found")
			return
		}

		serverError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, order)
}

func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request, orderId openapi.OrderIdParameter) {
	id, valid := parseID(w, r, orderId)
	if !valid {
		return
	}

	if err := h.store.DeleteOrder(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, r, http.StatusNotFound, apiResponse(http.StatusNotFound, typeUnknown, "Order Not Found"))
			return
		}

		serverError(w, r, err)

		return
	}

	okID(w, r, id)
}

// saveUser stores a user under the given username, or the username in the
// payload if none is given.
func (h *Handler) saveUser(r *http.Request, username string, user *openapi.User) (int64, error) {
	if username == "" {
		if user.Username == nil || *user.Username == "" {
			return 0, fmt.Errorf("%w: user has no username", errBadInput)
		}

		username = *user.Username
	}

	if user.Username == nil {
		user.Username = ptr.To(username)
	}

	if user.Id == nil || *user.Id == 0 {
		existing, err := h.store.GetUser(r.Context(), username)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return 0, err
		}

		if existing != nil && existing.Id != nil {
			user.Id = existing.Id
		} else {
			user.Id = ptr.To(h.allocateID())
		}
	}

	if err := h.store.PutUser(r.Context(), username, user); err != nil {
		return 0, err
	}

	return *user.Id, nil
}

var errBadInput = errors.New("bad input")

// writeSaveError maps a saveUser failure to a response.
func writeSaveError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, errBadInput) {
		badRequest(w, r, "bad input")
		return
	}

	serverError(w, r, err)
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		serverError(w, r, err)
		return
	}

	if body == nil {
		noData(w, r)
		return
	}

	user := &openapi.User{}

	if err := json.Unmarshal(body, user); err != nil {
		badRequest(w, r, "bad input")
		return
	}

	id, err := h.saveUser(r, "", user)
	if err != nil {
		writeSaveError(w, r, err)
		return
	}

	okID(w, r, id)
}

func (h *Handler) CreateUsersWithArrayInput(w http.ResponseWriter, r *http.Request) {
	h.saveUsers(w, r)
}

func (h *Handler) CreateUsersWithListInput(w http.ResponseWriter, r *http.Request) {
	h.saveUsers(w, r)
}

func (h *Handler) saveUsers(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		serverError(w, r, err)
		return
	}

	if body == nil {
		noData(w, r)
		return
	}

	var users openapi.Users

	if err := json.Unmarshal(body, &users); err != nil {
		serverError(w, r, fmt.Errorf("decoding users: %w", err))
		return
	}

	for i := range users {
		if _, err := h.saveUser(r, "", &users[i]); err != nil {
			writeSaveError(w, r, err)
			return
		}
	}

	ok(w, r, "ok")
}

// LoginUser accepts any password, the session token is informational.
func (h *Handler) LoginUser(w http.ResponseWriter, r *http.Request, params openapi.LoginUserParams) {
	log.FromContext(r.Context()).V(1).Info("session opened", "username", params.Username)

	expires := h.now().Add(h.options.SessionLifetime).UTC()

	w.Header().Set("X-Rate-Limit", strconv.Itoa(h.options.CallsPerHour))
	w.Header().Set("X-Expires-After", expires.Format(expiryLayout))

	ok(w, r, "logged in user session:"+uuid.NewString())
}

func (h *Handler) LogoutUser(w http.ResponseWriter, r *http.Request) {
	ok(w, r, "ok")
}

func (h *Handler) GetUserByName(w http.ResponseWriter, r *http.Request, username openapi.UsernameParameter) {
	user, err := h.store.GetUser(r.Context(), username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			notFound(w, r, "User not found")
			return
		}

		serverError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, user)
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request, username openapi.UsernameParameter) {
	body, err := readBody(r)
	if err != nil {
		serverError(w, r, err)
		return
	}

	if body == nil {
		noData(w, r)
		return
	}

	user := &openapi.User{}

	if err := json.Unmarshal(body, user); err != nil {
		badRequest(w, r, "bad input")
		return
	}

	id, err := h.saveUser(r, username, user)
	if err != nil {
		writeSaveError(w, r, err)
		return
	}

	okID(w, r, id)
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request, username openapi.UsernameParameter) {
	if err := h.store.DeleteUser(r.Context(), username); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			notFoundEmpty(w)
			return
		}

		serverError(w, r, err)

		return
	}

	ok(w, r, username)
}
