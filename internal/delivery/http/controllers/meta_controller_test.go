package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ekhayalegae/internal/domain"
)

// fakeStoreInfo implements domain.StoreInfo for diagnostics tests.
type fakeStoreInfo struct {
	connected   bool
	collections []string
	listErr     error
}

func (f *fakeStoreInfo) Connected() bool { return f.connected }

func (f *fakeStoreInfo) CollectionNames(ctx context.Context) ([]string, error) {
	return f.collections, f.listErr
}

func TestRoot(t *testing.T) {
	ctrl := NewMetaController(testLogger, &fakeStoreInfo{}, false, false)

	rec := httptest.NewRecorder()
	ctrl.Root(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Ekhaya Legae API running", body.Message)
}

func decodeDiagnostics(t *testing.T, rec *httptest.ResponseRecorder) DiagnosticsResponse {
	t.Helper()
	var body DiagnosticsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestDiagnostics(t *testing.T) {
	tests := []struct {
		name            string
		store           *fakeStoreInfo
		urlSet, nameSet bool
		wantDatabase    string
		wantStatus      string
		wantCollections []string
	}{
		{
			name:            "not configured",
			store:           &fakeStoreInfo{},
			wantDatabase:    "❌ Not Available",
			wantStatus:      "Not Connected",
			wantCollections: []string{},
		},
		{
			name:            "connected and working",
			store:           &fakeStoreInfo{connected: true, collections: []string{"event", "booking"}},
			urlSet:          true,
			nameSet:         true,
			wantDatabase:    "✅ Connected & Working",
			wantStatus:      "Connected",
			wantCollections: []string{"event", "booking"},
		},
		{
			name:            "connected but listing fails",
			store:           &fakeStoreInfo{connected: true, listErr: errors.New("timeout")},
			urlSet:          true,
			nameSet:         true,
			wantDatabase:    "⚠️ Connected but Error: timeout",
			wantStatus:      "Connected",
			wantCollections: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewMetaController(testLogger, tt.store, tt.urlSet, tt.nameSet)

			rec := httptest.NewRecorder()
			ctrl.Diagnostics(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

			require.Equal(t, http.StatusOK, rec.Code, "diagnostics never fail")
			body := decodeDiagnostics(t, rec)
			assert.Equal(t, "✅ Running", body.Backend)
			assert.Equal(t, tt.wantDatabase, body.Database)
			assert.Equal(t, tt.wantStatus, body.ConnectionStatus)
			assert.Equal(t, tt.wantCollections, body.Collections)
			if tt.urlSet {
				assert.Equal(t, "✅ Set", body.DatabaseURL)
			} else {
				assert.Equal(t, "❌ Not Set", body.DatabaseURL)
			}
		})
	}
}

func TestSchemaEndpoint(t *testing.T) {
	ctrl := NewMetaController(testLogger, &fakeStoreInfo{}, false, false)

	rec := httptest.NewRecorder()
	ctrl.Schema(rec, httptest.NewRequest(http.MethodGet, "/api/schema", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]struct {
		Collection string                    `json:"collection"`
		Fields     map[string]map[string]any `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 8)
	for _, name := range []string{
		domain.CollectionEvent, domain.CollectionBooking,
		domain.CollectionTrainingApplication, domain.CollectionContactMessage,
		domain.CollectionStory, domain.CollectionPartner,
		domain.CollectionResource, domain.CollectionSiteStat,
	} {
		spec, ok := body[name]
		require.True(t, ok, "missing collection %s", name)
		assert.Equal(t, name, spec.Collection)
		assert.NotEmpty(t, spec.Fields)
	}
}
