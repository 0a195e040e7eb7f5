package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// SiteStat is one labelled counter shown in the site's stats section.
type SiteStat struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Label string             `bson:"label" json:"label"`
	Value int                `bson:"value" json:"value"`
}
