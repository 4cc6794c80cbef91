package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/fubolabs/retention-api/internal/types"
)

// CatalogFetcher retrieves subscriber and show records.
type CatalogFetcher interface {
	GetSubscribers(ctx context.Context) ([]types.Subscriber, error)
	GetShows(ctx context.Context) ([]types.Show, error)
}

// TextGenerator drafts email body text from a prompt.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// EmailSender delivers one email and returns the provider message ID.
type EmailSender interface {
	SendRetentionEmail(ctx context.Context, toEmail, subject, htmlBody string) (string, error)
}

// RetentionService orchestrates the per-subscriber pipeline: build prompt,
// generate, normalize, send, classify. Subscribers are processed one at a
// time in catalog order; nothing is cached or persisted between requests.
type RetentionService struct {
	catalog   CatalogFetcher
	generator TextGenerator
	sender    EmailSender
	logger    *zap.Logger
}

// NewRetentionService wires the pipeline dependencies.
func NewRetentionService(catalog CatalogFetcher, generator TextGenerator, sender EmailSender, logger *zap.Logger) *RetentionService {
	return &RetentionService{
		catalog:   catalog,
		generator: generator,
		sender:    sender,
		logger:    logger,
	}
}

// GenerateEmail produces the personalized HTML document for one subscriber.
func (s *RetentionService) GenerateEmail(ctx context.Context, sub types.Subscriber, shows []types.Show) (string, error) {
	prompt := BuildRetentionPrompt(sub, shows)

	s.logger.Debug("built retention prompt",
		zap.String("user_email", sub.Email),
		zap.Int("prompt_length", len(prompt)))

	body, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		return "", err
	}

	return EnsureHTMLDocument(body), nil
}

// RunBatch processes every subscriber. It fails fast when either catalog
// list is empty; after that, a failure for one subscriber is recorded in its
// result and never aborts the rest of the batch.
func (s *RetentionService) RunBatch(ctx context.Context) (*types.BatchEmailResponse, error) {
	subscribers, err := s.catalog.GetSubscribers(ctx)
	if err != nil {
		return nil, err
	}
	if len(subscribers) == 0 {
		return nil, &NotFoundError{Message: "No users found"}
	}

	shows, err := s.catalog.GetShows(ctx)
	if err != nil {
		return nil, err
	}
	if len(shows) == 0 {
		return nil, &NotFoundError{Message: "No shows found"}
	}

	results := make([]types.EmailResult, 0, len(subscribers))
	for _, sub := range subscribers {
		results = append(results, s.processSubscriber(ctx, sub, shows))
	}

	totalSent := 0
	for _, r := range results {
		if r.Status == types.StatusSent {
			totalSent++
		}
	}

	s.logger.Info("retention batch complete",
		zap.Int("total_users", len(subscribers)),
		zap.Int("total_sent", totalSent))

	return &types.BatchEmailResponse{
		TotalUsers: len(subscribers),
		TotalSent:  totalSent,
		Results:    results,
	}, nil
}

func (s *RetentionService) processSubscriber(ctx context.Context, sub types.Subscriber, shows []types.Show) types.EmailResult {
	html, err := s.GenerateEmail(ctx, sub, shows)
	if err != nil {
		s.logger.Error("failed to generate retention email",
			zap.Error(err),
			zap.String("user_email", sub.Email))
		return types.EmailResult{
			UserEmail:    sub.Email,
			UserName:     sub.Name,
			Status:       types.StatusError,
			EmailPreview: fmt.Sprintf("Error: %v", err),
		}
	}

	subject := RetentionSubject(sub.Name)

	emailID, err := s.sender.SendRetentionEmail(ctx, sub.Email, subject, html)
	if err != nil {
		return types.EmailResult{
			UserEmail:    sub.Email,
			UserName:     sub.Name,
			Status:       types.StatusFailed,
			EmailPreview: TruncatePreview(html),
		}
	}

	return types.EmailResult{
		UserEmail:    sub.Email,
		UserName:     sub.Name,
		Status:       types.StatusSent,
		EmailID:      emailID,
		EmailPreview: TruncatePreview(html),
	}
}

// RunSingle processes exactly one subscriber, matched by exact (case
// sensitive) email address. Unlike the batch path, failures propagate so the
// caller can surface a precise status code for this one subscriber.
func (s *RetentionService) RunSingle(ctx context.Context, userEmail string) (*types.SingleEmailResponse, error) {
	subscribers, err := s.catalog.GetSubscribers(ctx)
	if err != nil {
		return nil, err
	}

	var sub *types.Subscriber
	for i := range subscribers {
		if subscribers[i].Email == userEmail {
			sub = &subscribers[i]
			break
		}
	}
	if sub == nil {
		return nil, &NotFoundError{Message: fmt.Sprintf("User %s not found", userEmail)}
	}

	shows, err := s.catalog.GetShows(ctx)
	if err != nil {
		return nil, err
	}

	html, err := s.GenerateEmail(ctx, *sub, shows)
	if err != nil {
		return nil, err
	}

	subject := RetentionSubject(sub.Name)

	response := &types.SingleEmailResponse{
		UserEmail:    sub.Email,
		UserName:     sub.Name,
		EmailContent: html,
	}

	emailID, err := s.sender.SendRetentionEmail(ctx, sub.Email, subject, html)
	if err != nil {
		response.Status = types.StatusFailed
		return response, nil
	}

	response.Status = types.StatusSent
	response.EmailID = emailID
	return response, nil
}
