package controllers

import (
	"log/slog"
	"net/http"

	"ekhayalegae/internal/delivery/http/helpers"
	"ekhayalegae/internal/domain"
	"ekhayalegae/internal/schema"
)

// MetaController serves the liveness, diagnostics, and schema
// introspection endpoints. None of them ever return a non-success status.
type MetaController struct {
	Logger          *slog.Logger
	Store           domain.StoreInfo
	DatabaseURLSet  bool
	DatabaseNameSet bool
}

func NewMetaController(logger *slog.Logger, store domain.StoreInfo, databaseURLSet, databaseNameSet bool) *MetaController {
	return &MetaController{
		Logger:          logger,
		Store:           store,
		DatabaseURLSet:  databaseURLSet,
		DatabaseNameSet: databaseNameSet,
	}
}

// RootResponse is the liveness message for GET /.
type RootResponse struct {
	Message string `json:"message"`
}

// Root godoc
// @Summary Liveness message
// @Description Confirms the API is running. No store access.
// @Tags meta
// @Produce json
// @Success 200 {object} controllers.RootResponse
// @Router / [get]
func (c *MetaController) Root(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, RootResponse{Message: "Ekhaya Legae API running"})
}

// DiagnosticsResponse reports store connectivity for GET /test. Every
// field is a human-readable status string; failures are folded into the
// strings rather than returned as error responses.
type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Diagnostics godoc
// @Summary Store-connectivity diagnostic
// @Description Reports whether the store is configured and reachable, and best-effort lists its collections. Always returns 200.
// @Tags meta
// @Produce json
// @Success 200 {object} controllers.DiagnosticsResponse
// @Router /test [get]
func (c *MetaController) Diagnostics(w http.ResponseWriter, r *http.Request) {
	resp := DiagnosticsResponse{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}
	if c.Store.Connected() {
		resp.Database = "✅ Available"
		resp.ConnectionStatus = "Connected"
		if names, err := c.Store.CollectionNames(r.Context()); err != nil {
			resp.Database = "⚠️ Connected but Error: " + truncate(err.Error(), 80)
		} else {
			resp.Collections = names
			resp.Database = "✅ Connected & Working"
		}
	}
	resp.DatabaseURL = setOrNot(c.DatabaseURLSet)
	resp.DatabaseName = setOrNot(c.DatabaseNameSet)
	helpers.WriteJSON(w, http.StatusOK, resp)
}

// Schema godoc
// @Summary Schema introspection
// @Description Returns the declared field specs of every collection, keyed by collection name.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]schema.CollectionSpec
// @Router /api/schema [get]
func (c *MetaController) Schema(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, schema.Describe())
}

func setOrNot(set bool) string {
	if set {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
