// internal/domain/models/contact.go
package models

// ContactSubmission is a visitor's contact form entry. It lives for one
// request only and is never stored.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Gotcha  string `json:"_gotcha"` // honeypot; real visitors leave it empty
}

// Form field names, shared by the JSON tags above and form-encoded posts.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldSubject = "subject"
	FieldMessage = "message"
	FieldGotcha  = "_gotcha"
)
