package requests

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type Signup struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Password  string `json:"password" validate:"required"`
	Confirm   string `json:"confirm"`
	Role      string `json:"role" validate:"required,role"`
}

// SignupCheck carries the two password fields for live feedback while typing.
type SignupCheck struct {
	Password string `json:"password"`
	Confirm  string `json:"confirm"`
}

type BackendLogin struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type BackendRegister struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}
