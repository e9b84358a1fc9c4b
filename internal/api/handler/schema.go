package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses.
type errorResponse struct {
	Error string `json:"error"`
}

// successResponse acknowledges a write with no payload of its own.
type successResponse struct {
	Success bool `json:"success"`
}

// createdResponse acknowledges a create and returns the new record's id.
type createdResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}
