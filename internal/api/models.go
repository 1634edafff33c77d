package api

// Common request/response structures.
// Validation tags mirror the upstream schema rules: display strings are 2-30
// characters, avatar and link must be URLs, email must be well-formed.

// SignupRequest defines the payload for the user registration endpoint.
type SignupRequest struct {
	Email    string `json:"email"            validate:"required,email"`
	Password string `json:"password"         validate:"required"`
	Name     string `json:"name,omitempty"   validate:"omitempty,min=2,max=30"`
	About    string `json:"about,omitempty"  validate:"omitempty,min=2,max=30"`
	Avatar   string `json:"avatar,omitempty" validate:"omitempty,url"`
}

// SigninRequest defines the payload for the login endpoint.
type SigninRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SigninResponse confirms a successful login. The token itself travels in
// the auth cookie, never in the response body.
type SigninResponse struct {
	Message string `json:"message"`
}

// UpdateProfileRequest defines the payload for PATCH /users/me.
type UpdateProfileRequest struct {
	Name  string `json:"name"  validate:"required,min=2,max=30"`
	About string `json:"about" validate:"required,min=2,max=30"`
}

// UpdateAvatarRequest defines the payload for PATCH /users/me/avatar.
type UpdateAvatarRequest struct {
	Avatar string `json:"avatar" validate:"required,url"`
}

// CreateCardRequest defines the payload for POST /cards.
type CreateCardRequest struct {
	Name string `json:"name" validate:"required,min=2,max=30"`
	Link string `json:"link" validate:"required,url"`
}
