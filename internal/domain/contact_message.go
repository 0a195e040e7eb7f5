package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// ContactMessage is a message submitted through the public contact form.
// swagger:model ContactMessage
type ContactMessage struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"`
	Phone   *string            `bson:"phone,omitempty" json:"phone,omitempty"`
	Subject string             `bson:"subject" json:"subject"`
	Message string             `bson:"message" json:"message"`
}

// NewContactMessage returns an empty ContactMessage.
func NewContactMessage() *ContactMessage {
	return &ContactMessage{}
}

// Validate checks required fields and email syntax.
func (m *ContactMessage) Validate() []string {
	var errs []string
	if m.Name == "" {
		errs = append(errs, "name is required")
	}
	if m.Email == "" {
		errs = append(errs, "email is required")
	} else if !validEmail(m.Email) {
		errs = append(errs, "email is not a valid email address")
	}
	if m.Subject == "" {
		errs = append(errs, "subject is required")
	}
	if m.Message == "" {
		errs = append(errs, "message is required")
	}
	return errs
}
