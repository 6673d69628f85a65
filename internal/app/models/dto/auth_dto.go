package dto

// ApplyRequest represents an applicant signup submission
type ApplyRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	Name      string  `json:"name" validate:"required,min=1,max=100"`
	Phone     *string `json:"phone" validate:"omitempty,max=30"`
	Password  string  `json:"password" validate:"required,min=8"`
	Password2 string  `json:"password2" validate:"required"`
}

// LoginRequest represents a login submission
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ApplicationStatus reports where the caller's application stands
type ApplicationStatus struct {
	Rejected bool `json:"rejected"`
}

// TokenResponse carries an issued access token
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn"`
}
