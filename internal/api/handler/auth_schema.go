package handler

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type resetPasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required"`
}

type identityResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type loginResponse struct {
	Message string           `json:"message"`
	User    identityResponse `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}
