package requests

// EmailPayload is the message published to the mailer queue and consumed
// by the SMTP worker.
type EmailPayload struct {
	To       string `json:"to" validate:"required,email"`
	Subject  string `json:"subject" validate:"required"`
	TextBody string `json:"textBody"`
	HTMLBody string `json:"htmlBody"`
}
