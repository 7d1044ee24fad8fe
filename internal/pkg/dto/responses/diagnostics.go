package responses

// Diagnostics reports database health for the /test endpoint. The endpoint is
// best-effort: a failed collection listing degrades the Database field instead
// of failing the request.
type Diagnostics struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}
