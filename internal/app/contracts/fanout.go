package contracts

import (
	"context"
	"lablink-service/internal/app/models"
)

// NotificationEntry addresses one recipient of a fan-out event. Recipient
// is nil for email-only parties (patients are not directory-backed); then
// EmailAddress must be set and no Notification record is persisted.
type NotificationEntry struct {
	Recipient    *models.Actor
	EmailAddress string
	Title        string
	Body         string
	Data         map[string]string
}

type NotificationEvent struct {
	Type    models.NotificationType
	Entries []NotificationEntry
}

// FanoutService persists the durable Notification per directory-backed
// recipient, then best-effort dispatches push and email without blocking
// the caller on channel outcomes. It fails only when persistence fails.
type FanoutService interface {
	Notify(ctx context.Context, event *NotificationEvent) error
	// Wait blocks until in-flight channel dispatches drain; used on
	// shutdown and in tests.
	Wait()
}
