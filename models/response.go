package models

// APIResponse is the envelope every endpoint answers with.
type APIResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message,omitempty"`
	Data        any    `json:"data,omitempty"`
	Count       *int   `json:"count,omitempty"`
	Total       *int64 `json:"total,omitempty"`
	UnreadCount *int64 `json:"unreadCount,omitempty"`
	Page        *int   `json:"page,omitempty"`
	TotalPages  *int   `json:"totalPages,omitempty"`
	Errors      any    `json:"errors,omitempty"`
}
