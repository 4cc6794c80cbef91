package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// EmailService delivers generated retention emails through Resend.
type EmailService struct {
	client    *resend.Client
	logger    *zap.Logger
	fromEmail string
}

// NewEmailService creates an EmailService sending from the given address.
func NewEmailService(apiKey string, fromEmail string, logger *zap.Logger) *EmailService {
	client := resend.NewClient(apiKey)

	return &EmailService{
		client:    client,
		logger:    logger,
		fromEmail: fromEmail,
	}
}

// SendRetentionEmail sends one HTML email and returns the provider-assigned
// message ID. Delivery failures come back as errors; the orchestrator decides
// what a failed send means for the batch.
func (s *EmailService) SendRetentionEmail(ctx context.Context, toEmail, subject, htmlBody string) (string, error) {
	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{toEmail},
		Subject: subject,
		Html:    htmlBody,
		Headers: map[string]string{
			"X-Entity-Ref-ID": uuid.New().String(),
			"X-Campaign-Type": "retention",
		},
		Tags: []resend.Tag{
			{Name: "category", Value: "retention"},
		},
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		s.logger.Error("failed to send retention email",
			zap.Error(err),
			zap.String("to", toEmail),
			zap.String("subject", subject))
		return "", err
	}

	s.logger.Info("retention email sent",
		zap.String("email_id", sent.Id),
		zap.String("to", toEmail),
		zap.String("subject", subject))

	return sent.Id, nil
}
