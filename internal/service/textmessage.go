package service

import (
	"context"

	"shadowbrook-backend/internal/logger"
)

// ConsoleTextMessageService is a development stub that logs messages instead
// of sending real SMS. Swap in a Twilio-backed implementation when booking
// notifications go live.
type ConsoleTextMessageService struct{}

// NewConsoleTextMessageService creates a new console text message service
func NewConsoleTextMessageService() *ConsoleTextMessageService {
	return &ConsoleTextMessageService{}
}

// Send logs the outbound message
func (s *ConsoleTextMessageService) Send(ctx context.Context, toPhoneNumber, message string) error {
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"to":      toPhoneNumber,
		"message": message,
	}).Info("sms message")
	return nil
}
