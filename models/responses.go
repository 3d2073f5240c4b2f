package models

// ErrorResp is the uniform error envelope for every failed request.
type ErrorResp struct {
	Msg   string `json:"msg"`
	Error string `json:"error,omitempty"`
}

// UpvoteResp is the response body for PATCH /api/reports/:id/upvote.
type UpvoteResp struct {
	Upvotes    int    `json:"upvotes"`
	HasUpvoted bool   `json:"hasUpvoted"`
	Message    string `json:"message"`
}
