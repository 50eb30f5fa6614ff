package dto

// ContactRequest defines the expected payload for the contact form endpoint.
type ContactRequest struct {
	Name    string `json:"name" validate:"notblank"`
	Email   string `json:"email" validate:"notblank,simple_email"`
	Subject string `json:"subject" validate:"notblank"`
	Message string `json:"message" validate:"notblank"`
}
