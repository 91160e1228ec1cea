package responses

type BackendLogin struct {
	Token     string `json:"token"`
	Role      string `json:"role"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

type BackendMe struct {
	Email     string `json:"email,omitempty"`
	Role      string `json:"role"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

type LoginView struct {
	Error string `json:"error,omitempty"`
}

type SignupCheck struct {
	PasswordErrors []string `json:"password_errors"`
	ConfirmMessage string   `json:"confirm_message"`
}
