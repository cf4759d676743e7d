package validation

// Issue is a single field-level validation failure. Path names the offending
// request field.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}
