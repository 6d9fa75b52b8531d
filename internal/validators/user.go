package validators

import "github.com/contactapp/contact-api/models"

// Field bounds for user payloads.
const (
	maxUsernameLen = 100
	maxPasswordLen = 100
	maxNameLen     = 100
)

// ValidateRegisterUser checks the POST /api/users payload:
// username, password and name are all required and bounded.
func ValidateRegisterUser(req models.RegisterUserRequest) error {
	e := &ValidationError{}

	requireBounded(e, FieldUsername, req.Username, maxUsernameLen)
	requireBounded(e, FieldPassword, req.Password, maxPasswordLen)
	requireBounded(e, FieldName, req.Name, maxNameLen)

	return e.orNil()
}

// ValidateLoginUser checks the POST /api/users/login payload:
// username and password are required and bounded.
func ValidateLoginUser(req models.LoginUserRequest) error {
	e := &ValidationError{}

	requireBounded(e, FieldUsername, req.Username, maxUsernameLen)
	requireBounded(e, FieldPassword, req.Password, maxPasswordLen)

	return e.orNil()
}

// ValidateUpdateUser checks the PATCH /api/users/current payload:
// both fields are optional and bounded, but at least one must be present.
func ValidateUpdateUser(req models.UpdateUserRequest) error {
	e := &ValidationError{}

	if req.Name == "" && req.Password == "" {
		e.add(FieldName, "or password must be provided")
		return e.orNil()
	}

	optionalBounded(e, FieldName, req.Name, maxNameLen)
	optionalBounded(e, FieldPassword, req.Password, maxPasswordLen)

	return e.orNil()
}
