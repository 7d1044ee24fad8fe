package responses

type Lead struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}
