package external

// SignInRequest is the body of POST /users/login
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /users/adduser
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserServiceResponse is the body returned by the user service on success and on failure
type UserServiceResponse struct {
	Message string `json:"message"`
}
