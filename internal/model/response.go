package model

// APIResponse is the envelope for write endpoints and every error.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// LoginResponse carries the profile the client caches after a credential check.
type LoginResponse struct {
	Success bool         `json:"success"`
	User    *UserProfile `json:"user"`
}

// OrdersResponse is the order history of one customer, newest first.
type OrdersResponse struct {
	Success bool    `json:"success"`
	Orders  []Order `json:"orders"`
}
