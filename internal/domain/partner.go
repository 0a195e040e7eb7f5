package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Partner is a partner organization listed on the site.
type Partner struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	LogoURL  *string            `bson:"logo_url,omitempty" json:"logo_url,omitempty"`
	Website  *string            `bson:"website,omitempty" json:"website,omitempty"`
	Category *string            `bson:"category,omitempty" json:"category,omitempty"`
}
