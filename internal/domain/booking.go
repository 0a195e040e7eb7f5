package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking is a visitor's booking for an event, submitted through the
// public booking form.
// swagger:model Booking
type Booking struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	EventID        string             `bson:"event_id" json:"event_id"`
	FullName       string             `bson:"full_name" json:"full_name"`
	Email          string             `bson:"email" json:"email"`
	Phone          *string            `bson:"phone,omitempty" json:"phone,omitempty"`
	TicketQuantity int                `bson:"ticket_quantity" json:"ticket_quantity"`
	Notes          *string            `bson:"notes,omitempty" json:"notes,omitempty"`
	ConsentSMS     bool               `bson:"consent_sms" json:"consent_sms"`
}

// NewBooking returns a Booking with defaults applied: one ticket, no SMS consent.
func NewBooking() *Booking {
	return &Booking{TicketQuantity: 1}
}

// Validate checks required fields, email syntax, and the ticket quantity
// bounds. Returns one message per violation; empty means valid.
func (b *Booking) Validate() []string {
	var errs []string
	if b.EventID == "" {
		errs = append(errs, "event_id is required")
	}
	if b.FullName == "" {
		errs = append(errs, "full_name is required")
	}
	if b.Email == "" {
		errs = append(errs, "email is required")
	} else if !validEmail(b.Email) {
		errs = append(errs, "email is not a valid email address")
	}
	if b.TicketQuantity < 1 || b.TicketQuantity > 10 {
		errs = append(errs, "ticket_quantity must be between 1 and 10")
	}
	return errs
}
