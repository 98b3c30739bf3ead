package app

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApplication(t *testing.T) *Application {
	t.Helper()

	dataDir := t.TempDir()
	csv := "Altitude_m_MSL,Ozone_ppbv\n100,30\n110,34\n"
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "flight.csv"), []byte(csv), 0o644))

	t.Setenv("O3_PATHS_DATA_DIR", dataDir)
	t.Setenv("O3_PATHS_DEFAULT_DATASET", "flight.csv")
	t.Setenv("O3_PATHS_LOGS_DIR", filepath.Join(t.TempDir(), "logs"))
	t.Setenv("O3_LOGGING_OUTPUT", "console")
	t.Setenv("O3_SECURITY_RATE_LIMIT_ENABLED", "false")

	application, err := NewApplication()
	require.NoError(t, err)
	return application
}

func TestNewApplication_RoutesWired(t *testing.T) {
	application := newTestApplication(t)

	tests := []struct {
		name       string
		target     string
		wantStatus int
	}{
		{name: "dashboard", target: "/", wantStatus: http.StatusOK},
		{name: "profile api", target: "/api/profile", wantStatus: http.StatusOK},
		{name: "health", target: "/api/health", wantStatus: http.StatusOK},
		{name: "metrics", target: "/metrics", wantStatus: http.StatusOK},
		{name: "unknown route", target: "/nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()
			application.Router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestNewApplication_SecurityHeadersApplied(t *testing.T) {
	application := newTestApplication(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	application.Router.ServeHTTP(rec, req)

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestNewApplication_ServerConfigured(t *testing.T) {
	application := newTestApplication(t)

	require.NotNil(t, application.Server)
	assert.Equal(t, ":8080", application.Server.Addr)
	assert.NotZero(t, application.Server.ReadTimeout)
}
