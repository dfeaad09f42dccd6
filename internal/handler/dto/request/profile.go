package request

type UpdateProfileRequest struct {
	Name            *string `json:"name" binding:"omitempty,max=255"`
	Email           *string `json:"email" binding:"omitempty,email"`
	NewPassword     *string `json:"new_password" binding:"omitempty,min=8"`
	CurrentPassword string  `json:"current_password"`
}

type DeleteAccountRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
}
