package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// TrainingApplication is an application to the organization's training
// programme, submitted through the public application form.
// swagger:model TrainingApplication
type TrainingApplication struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FullName             string             `bson:"full_name" json:"full_name"`
	Email                string             `bson:"email" json:"email"`
	Phone                string             `bson:"phone" json:"phone"`
	Age                  *int               `bson:"age,omitempty" json:"age,omitempty"`
	HighestQualification *string            `bson:"highest_qualification,omitempty" json:"highest_qualification,omitempty"`
	Area                 *string            `bson:"area,omitempty" json:"area,omitempty"`
	Motivation           *string            `bson:"motivation,omitempty" json:"motivation,omitempty"`
	ConsentSMS           bool               `bson:"consent_sms" json:"consent_sms"`
}

// NewTrainingApplication returns a TrainingApplication with defaults applied.
func NewTrainingApplication() *TrainingApplication {
	return &TrainingApplication{}
}

// Validate checks required fields, email syntax, and the age bounds
// (only when age is present).
func (a *TrainingApplication) Validate() []string {
	var errs []string
	if a.FullName == "" {
		errs = append(errs, "full_name is required")
	}
	if a.Email == "" {
		errs = append(errs, "email is required")
	} else if !validEmail(a.Email) {
		errs = append(errs, "email is not a valid email address")
	}
	if a.Phone == "" {
		errs = append(errs, "phone is required")
	}
	if a.Age != nil && (*a.Age < 16 || *a.Age > 100) {
		errs = append(errs, "age must be between 16 and 100")
	}
	return errs
}
