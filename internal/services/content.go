package services

import (
	"context"

	"ekhayalegae/internal/domain"
)

// defaultSiteStats returns the fixed zero-valued stats shown when the
// sitestat collection is empty or the store cannot be reached. The site
// never shows a blank stats section.
func defaultSiteStats() []*domain.SiteStat {
	return []*domain.SiteStat{
		{Label: "Tests Conducted", Value: 0},
		{Label: "Youth Trained", Value: 0},
		{Label: "Communities Served", Value: 0},
		{Label: "Lives Impacted", Value: 0},
	}
}

type contentService struct {
	events    domain.Collection[domain.Event]
	resources domain.Collection[domain.Resource]
	partners  domain.Collection[domain.Partner]
	stories   domain.Collection[domain.Story]
	stats     domain.Collection[domain.SiteStat]
}

// NewContentService builds the read-side service over the given collections.
func NewContentService(
	events domain.Collection[domain.Event],
	resources domain.Collection[domain.Resource],
	partners domain.Collection[domain.Partner],
	stories domain.Collection[domain.Story],
	stats domain.Collection[domain.SiteStat],
) domain.ContentService {
	return &contentService{
		events:    events,
		resources: resources,
		partners:  partners,
		stories:   stories,
		stats:     stats,
	}
}

func (s *contentService) ListEvents(ctx context.Context, limit int64) ([]*domain.Event, error) {
	return s.events.Find(ctx, domain.Filter{}, limit)
}

func (s *contentService) ListResources(ctx context.Context, resourceType, language string, limit int64) ([]*domain.Resource, error) {
	filter := domain.Filter{}
	if resourceType != "" {
		filter["type"] = resourceType
	}
	if language != "" {
		filter["language"] = language
	}
	return s.resources.Find(ctx, filter, limit)
}

func (s *contentService) ListPartners(ctx context.Context, limit int64) ([]*domain.Partner, error) {
	return s.partners.Find(ctx, domain.Filter{}, limit)
}

func (s *contentService) ListFeaturedStories(ctx context.Context, limit int64) ([]*domain.Story, error) {
	return s.stories.Find(ctx, domain.Filter{"featured": true}, limit)
}

// SiteStats returns all configured stats, unbounded. An empty collection
// and a store failure both fall back to the fixed defaults; the two
// conditions are deliberately not distinguished.
func (s *contentService) SiteStats(ctx context.Context) []*domain.SiteStat {
	items, err := s.stats.Find(ctx, domain.Filter{}, 0)
	if err != nil || len(items) == 0 {
		return defaultSiteStats()
	}
	return items
}
