package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"o3profile/internal/config"
	"o3profile/internal/dataset"
	apierrors "o3profile/internal/errors"
	"o3profile/internal/profile"
	"o3profile/internal/services"
	"o3profile/pkg/contracts/domain"
)

const validCSV = `Altitude_m_MSL,Ozone_ppbv
100,30
110,34
150,31
490,10
`

func newTestRouter(t *testing.T, csvContent string) *chi.Mux {
	t.Helper()

	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "flight.csv"), []byte(csvContent), 0o644))

	cfg := &config.Config{}
	cfg.Paths.DataDir = dataDir
	cfg.Paths.DefaultDataset = "flight.csv"
	cfg.Pipeline.BinWidth = 50
	cfg.Pipeline.Window = 11
	cfg.Pipeline.ShowRaw = true
	cfg.Pipeline.ShowBand = true

	builder := profile.NewBuilder(dataset.NewCache(nil), nil)
	service := services.NewProfileService(builder, nil, nil)
	errorHandler := apierrors.NewErrorHandler(nil)

	r := chi.NewRouter()
	r.Get("/", NewPageHandler(service, cfg, testLogger(), errorHandler).Dashboard)
	r.Mount("/api/profile", NewProfileHandler(service, cfg, testLogger(), errorHandler).Routes())
	r.Get("/api/health", NewHealthHandler("test").HealthCheck)
	return r
}

func doRequest(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apierrors.APIError {
	t.Helper()
	var apiErr apierrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestGetProfile_Defaults(t *testing.T) {
	router := newTestRouter(t, validCSV)

	rec := doRequest(t, router, "/api/profile")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var data domain.PlotData
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &data))

	assert.Equal(t, 50, data.Params.BinWidth)
	assert.Equal(t, 11, data.Params.Window)
	assert.Equal(t, 4, data.Cleaned)
	assert.Len(t, data.Points, 4, "raw points included by default")
	assert.NotEmpty(t, data.Rows)
}

func TestGetProfile_ParameterOverrides(t *testing.T) {
	router := newTestRouter(t, validCSV)

	rec := doRequest(t, router, "/api/profile?bin=100&window=3&raw=false")

	require.Equal(t, http.StatusOK, rec.Code)

	var data domain.PlotData
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &data))

	assert.Equal(t, 100, data.Params.BinWidth)
	assert.Equal(t, 3, data.Params.Window)
	assert.False(t, data.Params.ShowRaw)
	assert.Empty(t, data.Points)

	require.Len(t, data.Rows, 3)
	assert.Equal(t, 100.0, data.Rows[0].AltBin)
	assert.Equal(t, 2, data.Rows[0].Count)
	assert.Equal(t, 200.0, data.Rows[1].AltBin)
	assert.Equal(t, 500.0, data.Rows[2].AltBin)
}

func TestGetProfile_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{name: "non-integer bin", target: "/api/profile?bin=abc"},
		{name: "non-integer window", target: "/api/profile?window=1.5"},
		{name: "bin out of range", target: "/api/profile?bin=600"},
		{name: "bin off step", target: "/api/profile?bin=55"},
		{name: "even window", target: "/api/profile?window=10"},
	}

	router := newTestRouter(t, validCSV)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, tt.target)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			apiErr := decodeAPIError(t, rec)
			assert.Equal(t, "VALIDATION_FAILED", apiErr.ErrorCode)
		})
	}
}

func TestGetProfile_DatasetNotFound(t *testing.T) {
	router := newTestRouter(t, validCSV)

	rec := doRequest(t, router, "/api/profile?source=absent.csv")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "DATASET_NOT_FOUND", decodeAPIError(t, rec).ErrorCode)
}

func TestGetProfile_SchemaMismatch(t *testing.T) {
	router := newTestRouter(t, "Height,O3\n100,30\n")

	rec := doRequest(t, router, "/api/profile")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "SCHEMA_MISMATCH", decodeAPIError(t, rec).ErrorCode)
}

func TestGetProfile_EmptyDataset(t *testing.T) {
	router := newTestRouter(t, "Altitude_m_MSL,Ozone_ppbv\n100,-1\n,30\n")

	rec := doRequest(t, router, "/api/profile")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "EMPTY_DATASET", decodeAPIError(t, rec).ErrorCode)
}

func TestGetProfile_SourceCannotEscapeDataDir(t *testing.T) {
	router := newTestRouter(t, validCSV)

	// The traversal is reduced to its base name, which does not exist inside
	// the data directory.
	rec := doRequest(t, router, "/api/profile?source=..%2F..%2Fetc%2Fpasswd")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "DATASET_NOT_FOUND", decodeAPIError(t, rec).ErrorCode)
}

func TestDashboard(t *testing.T) {
	router := newTestRouter(t, validCSV)

	rec := doRequest(t, router, "/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Ozone Profile Dashboard")
	assert.Contains(t, rec.Body.String(), "echarts.init")
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t, validCSV)

	rec := doRequest(t, router, "/api/health")

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "test", body["version"])
}
