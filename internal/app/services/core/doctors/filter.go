package doctors

import (
	"mediportal-service/internal/pkg/dto/requests"

	"go.mongodb.org/mongo-driver/bson"
)

// BuildListDoctorsFilter translates the supplied query parameters into a mongo
// filter. Every textual parameter is a membership test against the matching
// list field; price_max keeps only doctors with price_from at or below the
// bound, which also excludes documents without a price_from.
func BuildListDoctorsFilter(request *requests.ListDoctors) bson.M {
	filter := bson.M{}

	if request.Specialty != "" {
		filter["specialties"] = bson.M{"$in": bson.A{request.Specialty}}
	}
	if request.State != "" {
		filter["states"] = bson.M{"$in": bson.A{request.State}}
	}
	if request.City != "" {
		filter["cities"] = bson.M{"$in": bson.A{request.City}}
	}
	if request.Pathology != "" {
		filter["pathologies"] = bson.M{"$in": bson.A{request.Pathology}}
	}
	if request.ConsultationType != "" {
		filter["consultation_types"] = bson.M{"$in": bson.A{request.ConsultationType}}
	}
	if request.PriceMax != nil {
		filter["price_from"] = bson.M{"$lte": *request.PriceMax}
	}

	return filter
}
