package adapter

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-space-sync/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// newFakeSpace starts an httptest server routed by r and closes it with the test.
func newFakeSpace(t *testing.T, r chi.Router) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func testOptions(host string) Options {
	return Options{
		Source: config.Source{
			SpaceID:       "src",
			Environment:   "master",
			DeliveryToken: "cda-token",
			Host:          host,
		},
		Destination: config.Destination{
			SpaceID:         "dst",
			Environment:     "master",
			ManagementToken: "cma-token",
			Host:            host,
		},
		Transport: config.Adapter{PageSize: 2},
		UserAgent: "space-sync/test",
	}
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func item(sysType, id string) map[string]any {
	return map[string]any{"sys": map[string]any{"id": id, "type": sysType}}
}
