// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/movie-catalog/internal/config"
	"github.com/MKhiriev/movie-catalog/internal/logger"
	"github.com/MKhiriev/movie-catalog/internal/mock"
	"github.com/MKhiriev/movie-catalog/internal/service"
	"github.com/MKhiriev/movie-catalog/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testToken    = "access-token"
	testCallerID = "0190c7a4-8a1e-7c3a-9d55-3f1f4d2b6a01"
	testMovieID  = "0190c7a4-8a1e-7c3a-9d55-3f1f4d2b6a02"
)

type serviceMocks struct {
	auth    *mock.MockAuthService
	movies  *mock.MockMovieService
	appInfo *mock.MockAppInfoService
}

func newTestRouter(t *testing.T) (*chi.Mux, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mocks := serviceMocks{
		auth:    mock.NewMockAuthService(ctrl),
		movies:  mock.NewMockMovieService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		AuthService:    mocks.auth,
		MovieService:   mocks.movies,
		AppInfoService: mocks.appInfo,
	}
	h := NewHandler(services, config.Server{RequestTimeout: time.Minute}, logger.Nop())

	return h.Init(), mocks
}

// authorize makes the auth middleware accept testToken as testCallerID.
func (m serviceMocks) authorize() {
	m.auth.EXPECT().
		ParseAccessToken(gomock.Any(), testToken).
		Return(models.Token{UserID: testCallerID}, nil)
}

func newRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var reader io.Reader = http.NoBody
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withBearer(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer "+testToken)
	return req
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope[T any](t *testing.T, rec *httptest.ResponseRecorder) models.Response[T] {
	t.Helper()

	var resp models.Response[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "body: %s", rec.Body.String())
	return resp
}

func hopeFields() models.MovieFields {
	return models.MovieFields{
		Title:        "A New Hope",
		EpisodeID:    4,
		OpeningCrawl: "It is a period of civil war.",
		Director:     "George Lucas",
		Producer:     "Gary Kurtz, Rick McCallum",
		ReleaseDate:  "1977-05-25",
		URL:          "https://swapi.dev/api/films/1/",
	}
}

func hopeMovie() models.Movie {
	return models.Movie{ID: testMovieID, MovieFields: hopeFields()}
}

func envelope[T any](data *T, message string, status int) models.Response[T] {
	return models.Response[T]{
		Data:       data,
		Message:    message,
		IsSuccess:  status < http.StatusBadRequest,
		StatusCode: status,
	}
}
