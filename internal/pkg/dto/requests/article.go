package requests

// ListArticles carries the optional query parameters of the article listing
// endpoint. Absent parameters contribute no filter constraint.
type ListArticles struct {
	Query    string `validate:"omitempty"`
	Category string `validate:"omitempty"`
	Tag      string `validate:"omitempty"`
	Limit    int    `validate:"gte=1,lte=100"`
}
