package services

import (
	"context"

	"ekhayalegae/internal/domain"
)

type submissionService struct {
	bookings     domain.Collection[domain.Booking]
	applications domain.Collection[domain.TrainingApplication]
	messages     domain.Collection[domain.ContactMessage]
}

// NewSubmissionService builds the write-side service over the given
// collections. Records arrive already validated; each method is a single
// document insert with no retry.
func NewSubmissionService(
	bookings domain.Collection[domain.Booking],
	applications domain.Collection[domain.TrainingApplication],
	messages domain.Collection[domain.ContactMessage],
) domain.SubmissionService {
	return &submissionService{
		bookings:     bookings,
		applications: applications,
		messages:     messages,
	}
}

func (s *submissionService) CreateBooking(ctx context.Context, b *domain.Booking) (string, error) {
	return s.bookings.Insert(ctx, b)
}

func (s *submissionService) CreateTrainingApplication(ctx context.Context, a *domain.TrainingApplication) (string, error) {
	return s.applications.Insert(ctx, a)
}

func (s *submissionService) CreateContactMessage(ctx context.Context, m *domain.ContactMessage) (string, error) {
	return s.messages.Insert(ctx, m)
}
