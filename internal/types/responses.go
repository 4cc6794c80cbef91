package types

// Email delivery status values reported per subscriber.
const (
	StatusSent   = "sent"
	StatusFailed = "failed"
	StatusError  = "error"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse reports service status and configuration presence.
type HealthResponse struct {
	Status            string `json:"status"`
	WatsonxConfigured bool   `json:"watsonx_configured"`
	ResendConfigured  bool   `json:"resend_configured"`
}

// EmailResult represents the outcome of one personalized email send.
type EmailResult struct {
	UserEmail    string `json:"user_email"`
	UserName     string `json:"user_name"`
	Status       string `json:"status"`
	EmailID      string `json:"email_id,omitempty"`
	EmailPreview string `json:"email_preview"`
}

// BatchEmailResponse summarizes a full batch run.
type BatchEmailResponse struct {
	TotalUsers int           `json:"total_users"`
	TotalSent  int           `json:"total_sent"`
	Results    []EmailResult `json:"results"`
}

// SingleEmailResponse is returned by the single-subscriber path. Unlike the
// batch path it carries the complete generated document, not a preview.
type SingleEmailResponse struct {
	UserEmail    string `json:"user_email"`
	UserName     string `json:"user_name"`
	Status       string `json:"status"`
	EmailID      string `json:"email_id,omitempty"`
	EmailContent string `json:"email_content"`
}
