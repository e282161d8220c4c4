package fanout

import (
	"context"
	"lablink-service/internal/app/contracts"
	"lablink-service/internal/app/models"
	"lablink-service/internal/pkg/constvars"
	"lablink-service/internal/pkg/dto/requests"
	"lablink-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

type fanoutService struct {
	NotificationRepository contracts.NotificationRepository
	EmailService           contracts.EmailService
	PushService            contracts.PushService
	Log                    *zap.Logger

	inflight sync.WaitGroup
	timeout  time.Duration
}

func NewFanoutService(
	notificationRepository contracts.NotificationRepository,
	emailService contracts.EmailService,
	pushService contracts.PushService,
	logger *zap.Logger,
) contracts.FanoutService {
	return &fanoutService{
		NotificationRepository: notificationRepository,
		EmailService:           emailService,
		PushService:            pushService,
		Log:                    logger,
		timeout:                30 * time.Second,
	}
}

// Notify persists one Notification per directory-backed recipient, then
// dispatches push and email concurrently per entry. Channel failures are
// logged and swallowed; only a persistence failure is returned, and even
// that never rolls back the business mutation that triggered the event.
func (svc *fanoutService) Notify(ctx context.Context, event *contracts.NotificationEvent) error {
	var persistErr error

	for _, entry := range event.Entries {
		if entry.Recipient != nil {
			notification := &models.Notification{
				ReceiverID:   entry.Recipient.ID,
				ReceiverRole: entry.Recipient.Role,
				Type:         event.Type,
				Title:        entry.Title,
				Body:         entry.Body,
				IsRead:       false,
				CreatedAt:    time.Now(),
			}
			if _, err := svc.NotificationRepository.Insert(ctx, notification); err != nil {
				svc.Log.Error("fanout failed to persist notification",
					zap.String(constvars.LoggingRecipientKey, entry.Recipient.ID.Hex()),
					zap.String(constvars.LoggingRoleKey, string(entry.Recipient.Role)),
					zap.Error(err),
				)
				if persistErr == nil {
					persistErr = err
				}
				// The durable record failed; skip the channels for this
				// entry but keep notifying everyone else.
				continue
			}
		}

		svc.dispatch(entry)
	}

	if persistErr != nil {
		return exceptions.ErrNotificationPersist(persistErr)
	}
	return nil
}

func (svc *fanoutService) dispatch(entry contracts.NotificationEntry) {
	if entry.Recipient != nil && entry.Recipient.DeviceToken != "" && entry.Recipient.IsNotification {
		svc.inflight.Add(1)
		go func(recipient models.Actor, entry contracts.NotificationEntry) {
			defer svc.inflight.Done()
			ctx, cancel := context.WithTimeout(context.Background(), svc.timeout)
			defer cancel()

			err := svc.PushService.SendPush(ctx, recipient.DeviceToken, entry.Title, entry.Body, entry.Data)
			if err != nil {
				svc.Log.Error("fanout push dispatch failed",
					zap.String(constvars.LoggingChannelKey, constvars.NotificationChannelPush),
					zap.String(constvars.LoggingRecipientKey, recipient.ID.Hex()),
					zap.Error(err),
				)
			}
		}(*entry.Recipient, entry)
	}

	address := entry.EmailAddress
	if address == "" && entry.Recipient != nil {
		address = entry.Recipient.Email
	}
	if address == "" {
		return
	}

	svc.inflight.Add(1)
	go func(address string, entry contracts.NotificationEntry) {
		defer svc.inflight.Done()
		ctx, cancel := context.WithTimeout(context.Background(), svc.timeout)
		defer cancel()

		err := svc.EmailService.SendEmail(ctx, &requests.EmailPayload{
			To:       address,
			Subject:  entry.Title,
			TextBody: entry.Body,
		})
		if err != nil {
			svc.Log.Error("fanout email dispatch failed",
				zap.String(constvars.LoggingChannelKey, constvars.NotificationChannelEmail),
				zap.String(constvars.LoggingRecipientKey, address),
				zap.Error(err),
			)
		}
	}(address, entry)
}

func (svc *fanoutService) Wait() {
	svc.inflight.Wait()
}
