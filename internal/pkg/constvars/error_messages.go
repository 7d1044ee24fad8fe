package constvars

// Client-facing messages
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process your request, please check your input"
	ErrClientArticleNotFound               = "Article not found"
	ErrClientServerLongRespond             = "Server takes too long to respond"
)

// Developer-facing messages
const (
	ErrDevCannotParseJSON            = "Failed to parse JSON request body"
	ErrDevValidationFailed           = "Request payload failed validation"
	ErrDevQueryParamValidationFailed = "Query parameter %s failed validation"
	ErrDevArticleNotFound            = "No article document matches the given slug"
	ErrDevServerDeadlineExceeded     = "Context deadline exceeded before the operation completed"
	ErrDevDBFailedToFindDocument     = "MongoDB failed to find document(s)"
	ErrDevDBFailedToIterateDocuments = "MongoDB failed to iterate the result cursor"
	ErrDevDBFailedToInsertDocument   = "MongoDB failed to insert document"
	ErrDevQueuePublishFailed         = "Failed to publish message to the lead queue"
)

// Validation tag messages. Tags listed in TagsWithParams interpolate the
// validator parameter into the message.
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email address",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"url":      "must be a valid URL",
	"oneof":    "must be one of: %s",
}

var TagsWithParams = map[string]bool{
	"gte":   true,
	"lte":   true,
	"oneof": true,
}
