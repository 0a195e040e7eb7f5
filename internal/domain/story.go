package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Story is an impact story published on the site. The public listing
// only shows featured stories.
type Story struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title    string             `bson:"title" json:"title"`
	Body     string             `bson:"body" json:"body"`
	Author   *string            `bson:"author,omitempty" json:"author,omitempty"`
	Featured bool               `bson:"featured" json:"featured"`
}
