// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/movie-catalog/internal/logger"
	"github.com/MKhiriev/movie-catalog/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	payload := h.services.AppInfoService.GetAppVersion(r.Context())

	if _, err := utils.WriteJSON(w, payload, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "getServerVersion").Msg("failed to write response")
	}
}
