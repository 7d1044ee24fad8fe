package articles

import (
	"mediportal-service/internal/pkg/dto/requests"

	"go.mongodb.org/mongo-driver/bson"
)

// BuildListArticlesFilter translates the supplied query parameters into a
// mongo filter. Absent parameters add no constraint; an empty request matches
// every document.
func BuildListArticlesFilter(request *requests.ListArticles) bson.M {
	filter := bson.M{}

	if request.Query != "" {
		filter["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": request.Query, "$options": "i"}},
			bson.M{"summary": bson.M{"$regex": request.Query, "$options": "i"}},
		}
	}
	if request.Category != "" {
		filter["category"] = request.Category
	}
	if request.Tag != "" {
		filter["tags"] = bson.M{"$in": bson.A{request.Tag}}
	}

	return filter
}
