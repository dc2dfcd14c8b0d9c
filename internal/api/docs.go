package api

// ErrorResponse is the JSON error body returned by the API endpoints
// @Description A machine-readable error
// @swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// @example session expired
	Error string `json:"error" example:"session expired"`
}
