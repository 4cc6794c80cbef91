package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewEmailService(t *testing.T) {
	service := NewEmailService("re_test_key", "noreply@sunheart.tech", zap.NewNop())
	require.NotNil(t, service)
	assert.Equal(t, "noreply@sunheart.tech", service.fromEmail)
	assert.NotNil(t, service.client)
}

func TestEmailServiceImplementsEmailSender(t *testing.T) {
	var _ EmailSender = NewEmailService("re_test_key", "noreply@sunheart.tech", zap.NewNop())
}
