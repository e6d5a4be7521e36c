package handler

// errorResponse is the standard envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// --- Request / Response types ---

// Field-level validation lives here, in the transport layer: the account
// store itself only enforces the uniqueness constraint.

type signupRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type authResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	User    *sessionResponse `json:"user,omitempty"`
	Token   string           `json:"token,omitempty"`
}

type currentSessionResponse struct {
	Authenticated bool             `json:"authenticated"`
	User          *sessionResponse `json:"user,omitempty"`
}
