package todos

import validation "github.com/go-ozzo/ozzo-validation"

// CreateRequest is the todo creation payload.
type CreateRequest struct {
	Title string `form:"title" json:"title"`
}

// Validate runs the creation validation rules.
func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(3, 50)),
	)
}

// UpdateRequest is the partial update payload. Pointer fields separate
// "absent" from "zero value" so completed can be set to false.
type UpdateRequest struct {
	Title     *string `form:"title" json:"title"`
	Completed *bool   `form:"completed" json:"completed"`
}

// Validate runs the update validation rules on the fields present.
func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(3, 50)),
	)
}

// Patch converts the request into the repository patch form.
func (r UpdateRequest) Patch() Patch {
	return Patch{Title: r.Title, Completed: r.Completed}
}
