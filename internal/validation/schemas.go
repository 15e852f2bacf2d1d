package validation

// Per-endpoint request schemas. Field order here is contract: validation
// errors are reported in this order.

func nameField(name string) Field {
	return Field{Name: name, Constraints: []Constraint{
		MinLength(1, "Must contain at least one character"),
	}}
}

func emailField() Field {
	return Field{Name: "email", Constraints: []Constraint{Email()}}
}

func passwordField(name string) Field {
	return Field{Name: name, Constraints: Password()}
}

// requiredString is presence-checked only; any string value passes.
func requiredString(name string) Field {
	return Field{Name: name}
}

var (
	// Signup validates new registrations.
	Signup = Schema{Fields: []Field{
		nameField("firstname"),
		nameField("lastname"),
		emailField(),
		passwordField("password"),
	}}

	// ConfirmSignup validates signup confirmation requests.
	ConfirmSignup = Schema{Fields: []Field{
		emailField(),
		requiredString("code"),
	}}

	// ResendCode validates confirmation-code resend requests.
	// The provider resolves the username, so only presence is checked.
	ResendCode = Schema{Fields: []Field{
		requiredString("email"),
	}}

	// Login validates credential logins.
	Login = Schema{Fields: []Field{
		emailField(),
		passwordField("password"),
	}}

	// Logout validates global sign-out requests.
	Logout = Schema{Fields: []Field{
		requiredString("accessToken"),
	}}

	// VerifyToken validates requests that only carry a bearer token.
	VerifyToken = Schema{Fields: []Field{
		requiredString("accessToken"),
	}}

	// ChangePassword validates password-change requests.
	ChangePassword = Schema{Fields: []Field{
		requiredString("accessToken"),
		passwordField("previousPassword"),
		passwordField("newPassword"),
	}}

	// ForgotPassword validates password-reset initiations.
	ForgotPassword = Schema{Fields: []Field{
		requiredString("email"),
	}}

	// ConfirmForgotPassword validates password-reset completions.
	ConfirmForgotPassword = Schema{Fields: []Field{
		emailField(),
		passwordField("password"),
		requiredString("code"),
	}}

	// RefreshToken validates token-refresh requests.
	RefreshToken = Schema{Fields: []Field{
		requiredString("accessToken"),
		requiredString("refreshToken"),
	}}

	// DeleteAccount validates account-deletion requests.
	DeleteAccount = Schema{Fields: []Field{
		requiredString("accessToken"),
	}}
)
