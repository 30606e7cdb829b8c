package dto

// RegisterRequest is the body of POST /auth/register. Limits mirror the
// database column sizes.
type RegisterRequest struct {
	Login     string `json:"login" binding:"required,max=45,alpha_underscore"`
	Password  string `json:"password" binding:"required,max=45"`
	FirstName string `json:"first_name" binding:"required,max=75"`
	LastName  string `json:"last_name" binding:"required,max=75"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Login    string `json:"login" binding:"required,max=45"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is returned by login and reconnect. The token is also set
// as an HTTP-only cookie.
type LoginResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}
