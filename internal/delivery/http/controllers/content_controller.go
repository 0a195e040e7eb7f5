package controllers

import (
	"log/slog"
	"net/http"

	"ekhayalegae/internal/delivery/http/helpers"
	"ekhayalegae/internal/domain"
)

// Default limits for the listing endpoints.
const (
	DefaultEventLimit    = 10
	DefaultResourceLimit = 20
	DefaultPartnerLimit  = 20
	DefaultStoryLimit    = 10
)

// ContentController serves the public read-only listings. Store failures
// degrade to an empty item list with an error field and a 200 status:
// availability of the listing pages is prioritized over surfacing
// backend errors to visitors.
type ContentController struct {
	Logger  *slog.Logger
	Service domain.ContentService
}

func NewContentController(logger *slog.Logger, svc domain.ContentService) *ContentController {
	return &ContentController{
		Logger:  logger,
		Service: svc,
	}
}

// ListEvents godoc
// @Summary List events
// @Description Returns up to limit events (default 10). On store failure returns an empty list with an error field, status 200.
// @Tags content
// @Produce json
// @Param limit query int false "Maximum number of items" default(10)
// @Success 200 {object} helpers.ListResponse
// @Router /api/events [get]
func (c *ContentController) ListEvents(w http.ResponseWriter, r *http.Request) {
	limit := helpers.LimitParam(r, DefaultEventLimit)
	items, err := c.Service.ListEvents(r.Context(), limit)
	if err != nil {
		c.Logger.WarnContext(r.Context(), "listing degraded", "path", r.URL.Path, "err", err)
		helpers.WriteDegraded(w, err)
		return
	}
	helpers.WriteItems(w, items)
}

// ListResources godoc
// @Summary List resources
// @Description Returns up to limit resources (default 20), optionally filtered by exact type and language. Degrades like events.
// @Tags content
// @Produce json
// @Param limit query int false "Maximum number of items" default(20)
// @Param type query string false "Exact resource type (pdf | image | video | link)"
// @Param language query string false "Exact language"
// @Success 200 {object} helpers.ListResponse
// @Router /api/resources [get]
func (c *ContentController) ListResources(w http.ResponseWriter, r *http.Request) {
	limit := helpers.LimitParam(r, DefaultResourceLimit)
	q := r.URL.Query()
	items, err := c.Service.ListResources(r.Context(), q.Get("type"), q.Get("language"), limit)
	if err != nil {
		c.Logger.WarnContext(r.Context(), "listing degraded", "path", r.URL.Path, "err", err)
		helpers.WriteDegraded(w, err)
		return
	}
	helpers.WriteItems(w, items)
}

// ListPartners godoc
// @Summary List partners
// @Description Returns up to limit partners (default 20). Degrades like events.
// @Tags content
// @Produce json
// @Param limit query int false "Maximum number of items" default(20)
// @Success 200 {object} helpers.ListResponse
// @Router /api/partners [get]
func (c *ContentController) ListPartners(w http.ResponseWriter, r *http.Request) {
	limit := helpers.LimitParam(r, DefaultPartnerLimit)
	items, err := c.Service.ListPartners(r.Context(), limit)
	if err != nil {
		c.Logger.WarnContext(r.Context(), "listing degraded", "path", r.URL.Path, "err", err)
		helpers.WriteDegraded(w, err)
		return
	}
	helpers.WriteItems(w, items)
}

// ListStories godoc
// @Summary List featured stories
// @Description Returns up to limit stories with featured set to true (default 10). Degrades like events.
// @Tags content
// @Produce json
// @Param limit query int false "Maximum number of items" default(10)
// @Success 200 {object} helpers.ListResponse
// @Router /api/stories [get]
func (c *ContentController) ListStories(w http.ResponseWriter, r *http.Request) {
	limit := helpers.LimitParam(r, DefaultStoryLimit)
	items, err := c.Service.ListFeaturedStories(r.Context(), limit)
	if err != nil {
		c.Logger.WarnContext(r.Context(), "listing degraded", "path", r.URL.Path, "err", err)
		helpers.WriteDegraded(w, err)
		return
	}
	helpers.WriteItems(w, items)
}

// ListStats godoc
// @Summary List site stats
// @Description Returns all configured stats. An empty collection or an unreachable store both yield the fixed zero-valued defaults, status 200.
// @Tags content
// @Produce json
// @Success 200 {object} helpers.ListResponse
// @Router /api/stats [get]
func (c *ContentController) ListStats(w http.ResponseWriter, r *http.Request) {
	helpers.WriteItems(w, c.Service.SiteStats(r.Context()))
}
