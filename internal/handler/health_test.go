package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhaugen/awaydays/backend/internal/handler"
	"github.com/mhaugen/awaydays/backend/internal/ref"
)

// TestGetHealth_returns200WithOKStatus verifies that GET /healthz returns
// HTTP 200 and a JSON body of {"status":"ok"}, without identity headers.
func TestGetHealth_returns200WithOKStatus(t *testing.T) {
	h := handler.NewServer(nil, nil, nil, nil).Routes()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, "ok", body["status"])
}

func TestGetOpenAPI_returnsYAMLDocument(t *testing.T) {
	h := handler.NewServer(nil, nil, nil, nil).Routes()

	req := httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "yaml")
	assert.Contains(t, rec.Body.String(), "openapi:")
}

// ---- GET /countries --------------------------------------------------------

func TestGetCountries_200(t *testing.T) {
	countries, err := ref.Load()
	require.NoError(t, err)

	h := handler.NewServer(nil, nil, nil, countries).Routes()

	req := httptest.NewRequest(http.MethodGet, "/countries", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body []ref.Country
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.NotEmpty(t, body)
	assert.NotEmpty(t, body[0].Name)
	assert.NotEmpty(t, body[0].Color)
}

// TestGetCountries_503_WhenReferenceDataMissing verifies the degraded mode:
// a nil reference list turns the endpoint into a 503 but leaves the rest of
// the router untouched.
func TestGetCountries_503_WhenReferenceDataMissing(t *testing.T) {
	h := handler.NewServer(nil, nil, nil, nil).Routes()

	req := httptest.NewRequest(http.MethodGet, "/countries", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "reference_data_unavailable")
}
