package models

// ContactRequest is the contact form body. It is validated at the boundary
// and never stored.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,min=10,max=20"`
	Service string `json:"service,omitempty" validate:"omitempty,max=100"`
	Message string `json:"message" validate:"required,min=10,max=1000"`
}

type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
