package entity

// SignInCredentials are forwarded to the user service and never stored or logged.
type SignInCredentials struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type SignUpCredentials struct {
	Name            string `json:"name" form:"name"`
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword"`
}

// PasswordsMatch reports whether the password confirmation equals the password.
func (c SignUpCredentials) PasswordsMatch() bool {
	return c.Password == c.ConfirmPassword
}
