package service

import "context"

// PushService delivers push notifications to registered device tokens.
// Returns success count, failure count, list of invalid tokens, and error.
type PushService interface {
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)
}
