// Package schema declares the shape of every document collection: field
// names, types, optionality, defaults, and descriptions. It backs the
// /api/schema introspection endpoint and mirrors the explicit Validate
// methods on the domain types; it has no effect on persistence.
package schema

import "ekhayalegae/internal/domain"

// FieldSpec describes one field of a collection document.
type FieldSpec struct {
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Default     any    `json:"default"`
	Description string `json:"description,omitempty"`
}

// CollectionSpec describes the document shape of one collection.
type CollectionSpec struct {
	Collection string               `json:"collection"`
	Fields     map[string]FieldSpec `json:"fields"`
}

// Field type names used in specs. Nested objects are deliberately not
// supported; list[string] is the only composite type.
const (
	TypeString     = "string"
	TypeInteger    = "integer"
	TypeBoolean    = "boolean"
	TypeDatetime   = "datetime"
	TypeStringList = "list[string]"
)

// Describe returns the field specs of every registered collection, keyed
// by collection name. It is deterministic and side-effect-free.
func Describe() map[string]CollectionSpec {
	return map[string]CollectionSpec{
		domain.CollectionEvent: {
			Collection: domain.CollectionEvent,
			Fields: map[string]FieldSpec{
				"title":       {Type: TypeString, Required: true, Description: "Event title"},
				"description": {Type: TypeString, Description: "Event description"},
				"start_time":  {Type: TypeDatetime, Required: true, Description: "Event start time"},
				"end_time":    {Type: TypeDatetime, Required: true, Description: "Event end time"},
				"location":    {Type: TypeString, Required: true, Description: "Location or venue"},
				"organizer":   {Type: TypeString, Description: "Organizer name"},
				"capacity":    {Type: TypeInteger, Description: "Maximum attendance, at least 0"},
				"status":      {Type: TypeString, Default: "published", Description: "draft | published | cancelled"},
				"categories":  {Type: TypeStringList, Default: []string{}},
			},
		},
		domain.CollectionBooking: {
			Collection: domain.CollectionBooking,
			Fields: map[string]FieldSpec{
				"event_id":        {Type: TypeString, Required: true, Description: "Related event id"},
				"full_name":       {Type: TypeString, Required: true},
				"email":           {Type: TypeString, Required: true, Description: "Valid email address"},
				"phone":           {Type: TypeString},
				"ticket_quantity": {Type: TypeInteger, Default: 1, Description: "Between 1 and 10"},
				"notes":           {Type: TypeString},
				"consent_sms":     {Type: TypeBoolean, Default: false, Description: "SMS reminders consent"},
			},
		},
		domain.CollectionTrainingApplication: {
			Collection: domain.CollectionTrainingApplication,
			Fields: map[string]FieldSpec{
				"full_name":             {Type: TypeString, Required: true},
				"email":                 {Type: TypeString, Required: true, Description: "Valid email address"},
				"phone":                 {Type: TypeString, Required: true},
				"age":                   {Type: TypeInteger, Description: "Between 16 and 100"},
				"highest_qualification": {Type: TypeString},
				"area":                  {Type: TypeString},
				"motivation":            {Type: TypeString},
				"consent_sms":           {Type: TypeBoolean, Default: false},
			},
		},
		domain.CollectionContactMessage: {
			Collection: domain.CollectionContactMessage,
			Fields: map[string]FieldSpec{
				"name":    {Type: TypeString, Required: true},
				"email":   {Type: TypeString, Required: true, Description: "Valid email address"},
				"phone":   {Type: TypeString},
				"subject": {Type: TypeString, Required: true},
				"message": {Type: TypeString, Required: true},
			},
		},
		domain.CollectionStory: {
			Collection: domain.CollectionStory,
			Fields: map[string]FieldSpec{
				"title":    {Type: TypeString, Required: true},
				"body":     {Type: TypeString, Required: true},
				"author":   {Type: TypeString},
				"featured": {Type: TypeBoolean, Default: false},
			},
		},
		domain.CollectionPartner: {
			Collection: domain.CollectionPartner,
			Fields: map[string]FieldSpec{
				"name":     {Type: TypeString, Required: true},
				"logo_url": {Type: TypeString},
				"website":  {Type: TypeString},
				"category": {Type: TypeString},
			},
		},
		domain.CollectionResource: {
			Collection: domain.CollectionResource,
			Fields: map[string]FieldSpec{
				"title":       {Type: TypeString, Required: true},
				"type":        {Type: TypeString, Required: true, Description: "pdf | image | video | link"},
				"url":         {Type: TypeString, Required: true},
				"description": {Type: TypeString},
				"language":    {Type: TypeString, Default: "English"},
			},
		},
		domain.CollectionSiteStat: {
			Collection: domain.CollectionSiteStat,
			Fields: map[string]FieldSpec{
				"label": {Type: TypeString, Required: true},
				"value": {Type: TypeInteger, Default: 0},
			},
		},
	}
}
