package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Resource is a downloadable or linkable resource. Type is free-text by
// convention (pdf | image | video | link), not an enforced enum.
type Resource struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Type        string             `bson:"type" json:"type"`
	URL         string             `bson:"url" json:"url"`
	Description *string            `bson:"description,omitempty" json:"description,omitempty"`
	Language    string             `bson:"language" json:"language"`
}

// NewResource returns a Resource with the default language applied.
func NewResource() *Resource {
	return &Resource{Language: "English"}
}
