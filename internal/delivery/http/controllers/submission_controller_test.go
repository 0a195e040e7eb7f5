package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ekhayalegae/internal/domain"
)

// fakeSubmissionService implements domain.SubmissionService for handler tests.
type fakeSubmissionService struct {
	id  string
	err error

	lastBooking     *domain.Booking
	lastApplication *domain.TrainingApplication
	lastMessage     *domain.ContactMessage
}

func (f *fakeSubmissionService) CreateBooking(ctx context.Context, b *domain.Booking) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.lastBooking = b
	return f.id, nil
}

func (f *fakeSubmissionService) CreateTrainingApplication(ctx context.Context, a *domain.TrainingApplication) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.lastApplication = a
	return f.id, nil
}

func (f *fakeSubmissionService) CreateContactMessage(ctx context.Context, m *domain.ContactMessage) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.lastMessage = m
	return f.id, nil
}

func postJSON(ctrl http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	ctrl(rec, req)
	return rec
}

func TestCreateBookingSuccess(t *testing.T) {
	svc := &fakeSubmissionService{id: "65f1c0ffee0000000000b001"}
	ctrl := NewSubmissionController(testLogger, svc)

	rec := postJSON(ctrl.CreateBooking, "/api/bookings",
		`{"event_id":"ev-1","full_name":"Thandi Mokoena","email":"thandi@example.org"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "65f1c0ffee0000000000b001", body.ID)
	assert.Equal(t, "ok", body.Status)

	require.NotNil(t, svc.lastBooking)
	assert.Equal(t, "ev-1", svc.lastBooking.EventID)
	assert.Equal(t, 1, svc.lastBooking.TicketQuantity, "default quantity applied")
	assert.False(t, svc.lastBooking.ConsentSMS)
}

func TestCreateBookingValidationFailure(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing event_id", body: `{"full_name":"Thandi","email":"thandi@example.org"}`},
		{name: "missing full_name", body: `{"event_id":"ev-1","email":"thandi@example.org"}`},
		{name: "invalid email", body: `{"event_id":"ev-1","full_name":"Thandi","email":"nope"}`},
		{name: "ticket_quantity too high", body: `{"event_id":"ev-1","full_name":"Thandi","email":"thandi@example.org","ticket_quantity":11}`},
		{name: "malformed json", body: `{"event_id":`},
		{name: "unknown field", body: `{"event_id":"ev-1","full_name":"Thandi","email":"thandi@example.org","surprise":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeSubmissionService{id: "should-not-be-returned"}
			ctrl := NewSubmissionController(testLogger, svc)

			rec := postJSON(ctrl.CreateBooking, "/api/bookings", tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, svc.lastBooking, "nothing may be inserted on validation failure")
		})
	}
}

func TestCreateBookingStoreUnavailable(t *testing.T) {
	svc := &fakeSubmissionService{err: domain.ErrStoreUnavailable}
	ctrl := NewSubmissionController(testLogger, svc)

	rec := postJSON(ctrl.CreateBooking, "/api/bookings",
		`{"event_id":"ev-1","full_name":"Thandi Mokoena","email":"thandi@example.org"}`)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Error, "unavailable")
}

func TestCreateApplicationSuccess(t *testing.T) {
	svc := &fakeSubmissionService{id: "65f1c0ffee0000000000a001"}
	ctrl := NewSubmissionController(testLogger, svc)

	rec := postJSON(ctrl.CreateApplication, "/api/applications",
		`{"full_name":"Sipho Dlamini","email":"sipho@example.org","phone":"+27820000000","age":24}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.lastApplication)
	require.NotNil(t, svc.lastApplication.Age)
	assert.Equal(t, 24, *svc.lastApplication.Age)
}

func TestCreateApplicationValidationFailure(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing phone", body: `{"full_name":"Sipho","email":"sipho@example.org"}`},
		{name: "age below bound", body: `{"full_name":"Sipho","email":"sipho@example.org","phone":"1","age":15}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeSubmissionService{}
			ctrl := NewSubmissionController(testLogger, svc)

			rec := postJSON(ctrl.CreateApplication, "/api/applications", tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, svc.lastApplication)
		})
	}
}

func TestCreateContactSuccess(t *testing.T) {
	svc := &fakeSubmissionService{id: "65f1c0ffee0000000000c001"}
	ctrl := NewSubmissionController(testLogger, svc)

	rec := postJSON(ctrl.CreateContact, "/api/contact",
		`{"name":"Lerato","email":"lerato@example.org","subject":"Partnership","message":"Hello"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.lastMessage)
	assert.Equal(t, "Partnership", svc.lastMessage.Subject)
}

func TestCreateContactValidationFailure(t *testing.T) {
	svc := &fakeSubmissionService{}
	ctrl := NewSubmissionController(testLogger, svc)

	rec := postJSON(ctrl.CreateContact, "/api/contact",
		`{"name":"Lerato","email":"lerato@example.org","subject":"Partnership"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.lastMessage)
}
