package model

// Credentials is login form payload, lives only for a single submission
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
}

// SignUpCredentials is signup form payload
type SignUpCredentials struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,password"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// AuthResult is outcome of authentication attempt
type AuthResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// AuthSuccess builds successful AuthResult
func AuthSuccess(msg string) AuthResult {
	return AuthResult{Success: true, Message: msg}
}

// AuthFailure builds failed AuthResult
func AuthFailure(msg string) AuthResult {
	return AuthResult{Success: false, Message: msg}
}
