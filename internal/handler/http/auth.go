// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/movie-catalog/models"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.validator.Validate(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}

	writeEnvelope(w, r, h.services.AuthService.SignUp(r.Context(), req))
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.validator.Validate(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}

	writeEnvelope(w, r, h.services.AuthService.SignIn(r.Context(), req))
}

func (h *Handler) changeUserRole(w http.ResponseWriter, r *http.Request) {
	caller, err := callerID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.ChangeUserRoleRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err = h.validator.Validate(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}

	writeEnvelope(w, r, h.services.AuthService.ChangeUserRole(r.Context(), caller, req))
}
