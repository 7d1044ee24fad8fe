package responses

type SchemaField struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type CollectionSchema struct {
	Collection string        `json:"collection"`
	Fields     []SchemaField `json:"fields"`
}
