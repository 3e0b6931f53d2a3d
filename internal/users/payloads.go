package users

import validation "github.com/go-ozzo/ozzo-validation"

// UpdateRequest is the profile update payload. Username is the only
// mutable field; email changes would need re-verification.
type UpdateRequest struct {
	Username string `form:"username" json:"username"`
}

// Validate runs the update validation rules.
func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(3, 20)),
	)
}
