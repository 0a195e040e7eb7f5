package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event is a community event shown on the public site. Events are seeded
// and managed out-of-band; this system only reads them.
// swagger:model Event
type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description *string            `bson:"description,omitempty" json:"description,omitempty"`
	StartTime   time.Time          `bson:"start_time" json:"start_time"`
	EndTime     time.Time          `bson:"end_time" json:"end_time"`
	Location    string             `bson:"location" json:"location"`
	Organizer   *string            `bson:"organizer,omitempty" json:"organizer,omitempty"`
	Capacity    *int               `bson:"capacity,omitempty" json:"capacity,omitempty"`
	Status      string             `bson:"status" json:"status"`
	Categories  []string           `bson:"categories" json:"categories"`
}

// NewEvent returns an Event with defaults applied: status "published"
// and an empty category list. Status is free-text by convention
// (draft | published | cancelled), not an enforced enum.
func NewEvent() *Event {
	return &Event{
		Status:     "published",
		Categories: []string{},
	}
}
