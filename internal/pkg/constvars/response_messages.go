package constvars

const (
	ResponseUnknown = "unknown"
	ResponseOK      = "ok"
)
