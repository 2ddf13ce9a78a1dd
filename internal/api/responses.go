package api

// swagger:response helloResponse
// The fixed greeting string.
type helloResponse struct {
	// in: body
	Body string `json:"body"`
}

// swagger:response healthzResponse
// Health status.
type healthzResponse struct {
	// in: body
	Body struct {
		Status string `json:"status"`
	} `json:"body"`
}

// swagger:response readinessResponse
// Readiness status.
type readinessResponse struct {
	// in: body
	Body struct {
		Ready string `json:"ready"`
	} `json:"body"`
}

// swagger:response versionResponse
// Service version.
type versionResponse struct {
	// in: body
	Body struct {
		Version string `json:"version"`
	} `json:"body"`
}

// dummy usage to silence linters about unused types (they are used by swagger annotations)
var _ = []any{
	(*helloResponse)(nil),
	(*healthzResponse)(nil),
	(*readinessResponse)(nil),
	(*versionResponse)(nil),
}
