package models

import (
	"mediportal-service/internal/pkg/constvars"
	"reflect"
	"strings"
)

// Registration maps one entity shape to its storage collection.
type Registration struct {
	Collection string
	Shape      reflect.Type
}

// SchemaRegistry lists every registered entity in a stable order. The /schema
// endpoint introspects it; repositories use the collection names directly.
var SchemaRegistry = []Registration{
	{Collection: constvars.MongoCollectionDoctors, Shape: reflect.TypeOf(Doctor{})},
	{Collection: constvars.MongoCollectionArticles, Shape: reflect.TypeOf(Article{})},
	{Collection: constvars.MongoCollectionAppointmentRequests, Shape: reflect.TypeOf(AppointmentRequest{})},
	{Collection: constvars.MongoCollectionNewsletterSubscribers, Shape: reflect.TypeOf(NewsletterSubscriber{})},
}

// FieldName reports the document field name of a struct field, following its
// bson tag. The second return is false for fields that never hit the store.
func FieldName(field reflect.StructField) (string, bool) {
	tag := field.Tag.Get("bson")
	if tag == "" || tag == "-" {
		return "", false
	}
	name := strings.Split(tag, ",")[0]
	if name == "" {
		name = strings.ToLower(field.Name)
	}
	return name, true
}
