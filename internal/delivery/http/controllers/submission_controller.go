package controllers

import (
	"log/slog"
	"net/http"

	"ekhayalegae/internal/delivery/http/helpers"
	"ekhayalegae/internal/domain"
)

// SubmissionController serves the public form-submission endpoints.
// Validation failures are client errors with field-level messages; store
// failures surface as 503 with a descriptive message, never as silent
// success.
type SubmissionController struct {
	Logger  *slog.Logger
	Service domain.SubmissionService
}

func NewSubmissionController(logger *slog.Logger, svc domain.SubmissionService) *SubmissionController {
	return &SubmissionController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateBooking godoc
// @Summary Submit an event booking
// @Description Validates the booking and persists it verbatim. Returns the store-assigned id.
// @Tags submissions
// @Accept json
// @Produce json
// @Param booking body domain.Booking true "Booking"
// @Success 200 {object} helpers.CreateResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 503 {object} helpers.ErrorResponse
// @Router /api/bookings [post]
func (c *SubmissionController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	booking := domain.NewBooking()
	if !helpers.DecodeAndValidate(w, r, booking) {
		return
	}
	id, err := c.Service.CreateBooking(r.Context(), booking)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.CreateResponse{ID: id, Status: "ok"})
}

// CreateApplication godoc
// @Summary Submit a training application
// @Description Validates the application and persists it verbatim. Returns the store-assigned id.
// @Tags submissions
// @Accept json
// @Produce json
// @Param application body domain.TrainingApplication true "Training application"
// @Success 200 {object} helpers.CreateResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 503 {object} helpers.ErrorResponse
// @Router /api/applications [post]
func (c *SubmissionController) CreateApplication(w http.ResponseWriter, r *http.Request) {
	application := domain.NewTrainingApplication()
	if !helpers.DecodeAndValidate(w, r, application) {
		return
	}
	id, err := c.Service.CreateTrainingApplication(r.Context(), application)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.CreateResponse{ID: id, Status: "ok"})
}

// CreateContact godoc
// @Summary Submit a contact message
// @Description Validates the message and persists it verbatim. Returns the store-assigned id.
// @Tags submissions
// @Accept json
// @Produce json
// @Param message body domain.ContactMessage true "Contact message"
// @Success 200 {object} helpers.CreateResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 503 {object} helpers.ErrorResponse
// @Router /api/contact [post]
func (c *SubmissionController) CreateContact(w http.ResponseWriter, r *http.Request) {
	message := domain.NewContactMessage()
	if !helpers.DecodeAndValidate(w, r, message) {
		return
	}
	id, err := c.Service.CreateContactMessage(r.Context(), message)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.CreateResponse{ID: id, Status: "ok"})
}
