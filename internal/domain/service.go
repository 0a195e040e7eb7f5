package domain

import "context"

// ContentService defines the read side of the public API. List methods
// propagate store errors to the caller, which degrades them to an empty
// listing; SiteStats never errors (it falls back to fixed defaults).
type ContentService interface {
	ListEvents(ctx context.Context, limit int64) ([]*Event, error)
	ListResources(ctx context.Context, resourceType, language string, limit int64) ([]*Resource, error)
	ListPartners(ctx context.Context, limit int64) ([]*Partner, error)
	ListFeaturedStories(ctx context.Context, limit int64) ([]*Story, error)
	SiteStats(ctx context.Context) []*SiteStat
}

// SubmissionService defines the write side of the public API. Each method
// persists an already-validated record and returns its store-assigned id.
type SubmissionService interface {
	CreateBooking(ctx context.Context, b *Booking) (string, error)
	CreateTrainingApplication(ctx context.Context, a *TrainingApplication) (string, error)
	CreateContactMessage(ctx context.Context, m *ContactMessage) (string, error)
}
